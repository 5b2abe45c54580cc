package link

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

type LinkRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=30"`
	URL  string `json:"url" form:"url" validate:"required,url,max=255"`
}

// LinkNew 新建链接
func (l *Link) LinkNew(c *gin.Context) {
	var req LinkRequest
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

	link := models.LinkModel{Name: req.Name, URL: req.URL}
	if err := link.Create(); err != nil {
		global.Log.Error("link.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建链接失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, link, "链接已创建")
		return
	}
	utils.SetFlash(c, "success", "链接已创建。")
	c.Redirect(302, "/admin/link/manage")
}
