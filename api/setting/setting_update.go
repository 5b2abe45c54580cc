package setting

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type SettingUpdateRequest struct {
	Name         string `json:"name" form:"name" validate:"required,max=70"`
	BlogTitle    string `json:"blog_title" form:"blog_title" validate:"required,max=60"`
	BlogSubTitle string `json:"blog_sub_title" form:"blog_sub_title" validate:"required,max=100"`
	About        string `json:"about" form:"about" validate:"required"`
}

// SettingUpdate 更新博客设置
func (s *Setting) SettingUpdate(c *gin.Context) {
	var req SettingUpdateRequest
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

	admin, err := models.SoleAdmin()
	if err != nil {
		global.Log.Error("models.SoleAdmin() failed", zap.String("error", err.Error()))
		res.Error(c, res.AdminNotFound, "管理员账号不存在")
		return
	}

	if err := admin.UpdateSettings(req.Name, req.BlogTitle, req.BlogSubTitle, req.About); err != nil {
		global.Log.Error("admin.UpdateSettings() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新设置失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "设置已更新")
		return
	}
	utils.SetFlash(c, "success", "设置已更新。")
	c.Redirect(302, "/")
}
