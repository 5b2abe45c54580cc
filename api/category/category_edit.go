package category

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryEdit 分类改名，默认分类不可改
func (ca *Category) CategoryEdit(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		global.Log.Error("c.ShouldBind() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
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

	if err := category.Rename(req.Name); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryImmutable):
			res.Error(c, res.CategoryProtected, "默认分类不允许修改")
		case errors.Is(err, models.ErrCategoryNameExists):
			res.Error(c, res.CategoryExists, "分类名称已存在")
		default:
			global.Log.Error("category.Rename() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "更新分类失败")
		}
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, category, "分类已更新")
		return
	}
	utils.SetFlash(c, "success", "分类已更新。")
	c.Redirect(302, "/admin/category/manage")
}
