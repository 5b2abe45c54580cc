package link

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

// LinkEdit 编辑链接
func (l *Link) LinkEdit(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

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

	if err := link.Update(req.Name, req.URL); err != nil {
		global.Log.Error("link.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新链接失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, link, "链接已更新")
		return
	}
	utils.SetFlash(c, "success", "链接已更新。")
	c.Redirect(302, "/admin/link/manage")
}
