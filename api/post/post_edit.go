package post

import (
	"errors"
	"fmt"

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

// PostDetail 获取单篇博文的原始Markdown，编辑表单回填用
func (p *Post) PostDetail(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	post, err := models.PostGet(idReq.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "博文不存在")
			return
		}
		global.Log.Error("models.PostGet() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询博文失败")
		return
	}
	res.Success(c, post)
}

// PostEdit 编辑博文，发表时间保持不变
func (p *Post) PostEdit(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var req PostRequest
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

	body, err := resolveBody(req)
	if err != nil {
		res.Error(c, res.InvalidParameter, "正文不能为空")
		return
	}

	post, err := models.PostGet(idReq.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "博文不存在")
			return
		}
		global.Log.Error("models.PostGet() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询博文失败")
		return
	}

	if err := post.Update(req.Title, body, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Error(c, res.InvalidParameter, "分类不存在")
			return
		}
		global.Log.Error("post.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新博文失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, post, "博文已更新")
		return
	}
	utils.SetFlash(c, "success", "博文已更新。")
	c.Redirect(302, fmt.Sprintf("/post/%d", post.ID))
}
