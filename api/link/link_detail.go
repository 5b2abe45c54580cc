package link

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkDetail 单个链接，编辑表单回填用
func (l *Link) LinkDetail(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var link models.LinkModel
	if err := global.DB.First(&link, idReq.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "链接不存在")
			return
		}
		global.Log.Error("查询链接失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询链接失败")
		return
	}
	res.Success(c, link)
}
