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
)

type CategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=30"`
}

// CategoryNew 新建分类，重名拒绝
func (ca *Category) CategoryNew(c *gin.Context) {
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

	category := models.CategoryModel{Name: req.Name}
	if err := category.Create(); err != nil {
		if errors.Is(err, models.ErrCategoryNameExists) {
			res.Error(c, res.CategoryExists, "分类名称已存在")
			return
		}
		global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建分类失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, category, "分类已创建")
		return
	}
	utils.SetFlash(c, "success", "分类已创建。")
	c.Redirect(302, "/admin/category/manage")
}
