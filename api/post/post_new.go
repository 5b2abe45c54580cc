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

type PostRequest struct {
	Title      string `json:"title" form:"title" validate:"required,max=60"`
	Body       string `json:"body" form:"body"`           // Markdown正文
	BodyHTML   string `json:"body_html" form:"body_html"` // 富文本编辑器产出，与body二选一
	CategoryID uint   `json:"category_id" form:"category_id" validate:"required,gt=0"`
}

// resolveBody 确定入库的Markdown正文，body优先，body_html转换后存储
func resolveBody(req PostRequest) (string, error) {
	if req.Body != "" {
		return req.Body, nil
	}
	if req.BodyHTML != "" {
		return utils.ConvertHTMLToMarkdown(req.BodyHTML)
	}
	return "", utils.ErrEmptyContent
}

// PostNew 发表博文
func (p *Post) PostNew(c *gin.Context) {
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

	post := models.PostModel{
		Title:      req.Title,
		Body:       body,
		CanComment: true,
		CategoryID: req.CategoryID,
	}
	if err := post.Create(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Error(c, res.InvalidParameter, "分类不存在")
			return
		}
		global.Log.Error("post.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建博文失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, post, "博文已发表")
		return
	}
	utils.SetFlash(c, "success", "博文已发表。")
	c.Redirect(302, fmt.Sprintf("/post/%d", post.ID))
}
