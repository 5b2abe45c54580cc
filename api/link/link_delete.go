package link

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkDelete 删除链接
func (l *Link) LinkDelete(c *gin.Context) {
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

	if err := link.Delete(); err != nil {
		global.Log.Error("link.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除链接失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "链接已删除")
		return
	}
	utils.SetFlash(c, "success", "链接已删除。")
	c.Redirect(302, "/admin/link/manage")
}
