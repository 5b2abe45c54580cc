package category

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

// CategoryDelete 删除分类，其下博文划归默认分类
func (ca *Category) CategoryDelete(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.CategoryDelete(idReq.ID); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryImmutable):
			res.Error(c, res.CategoryProtected, "默认分类不允许删除")
		case errors.Is(err, gorm.ErrRecordNotFound):
			res.NotFoundError(c, "分类不存在")
		default:
			global.Log.Error("models.CategoryDelete() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "删除分类失败")
		}
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "分类已删除")
		return
	}
	utils.SetFlash(c, "success", "分类已删除，其下博文已划归默认分类。")
	c.Redirect(302, "/admin/category/manage")
}
