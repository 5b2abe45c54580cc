package category

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryDetail 单个分类，编辑表单回填用
func (ca *Category) CategoryDetail(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var category models.CategoryModel
	if err := global.DB.First(&category, idReq.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "分类不存在")
			return
		}
		global.Log.Error("查询分类失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询分类失败")
		return
	}
	res.Success(c, category)
}
