package comment

import (
	"errors"
	"fmt"

	"bluelog/global"
	"bluelog/middleware"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommentSubmitRequest struct {
	Author    string `json:"author" form:"author" validate:"max=30"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Site      string `json:"site" form:"site" validate:"omitempty,url,max=255"`
	Body      string `json:"body" form:"body" validate:"required"`
	RepliedID *uint  `json:"replied_id" form:"replied_id"`
}

// visitorFieldsValid 访客评论必须填写姓名和邮箱，管理员评论不需要
func visitorFieldsValid(req CommentSubmitRequest) string {
	if req.Author == "" {
		return "姓名不能为空"
	}
	if req.Email == "" {
		return "邮箱不能为空"
	}
	return ""
}

// CommentSubmit 向博文提交评论
// 携带有效会话则以管理员身份发表并直接过审，否则以访客身份发表待审核
func (co *Comment) CommentSubmit(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var req CommentSubmitRequest
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

	params := models.CommentSubmitParams{
		Author:    req.Author,
		Email:     req.Email,
		Site:      req.Site,
		Body:      req.Body,
		RepliedID: req.RepliedID,
	}

	claims := middleware.CurrentClaims(c)
	if claims != nil {
		admin, err := models.SoleAdmin()
		if err != nil {
			global.Log.Error("models.SoleAdmin() failed", zap.String("error", err.Error()))
			res.Error(c, res.ServerError, "服务器错误")
			return
		}
		params.Author = admin.Name
		params.Email = ""
		params.Site = "/about"
		params.FromAdmin = true
	} else if msg := visitorFieldsValid(req); msg != "" {
		res.Error(c, res.InvalidParameter, msg)
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

	comment, err := post.SubmitComment(params)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCommentClosed):
			res.Error(c, res.CommentClosed, "该博文已关闭评论")
		case errors.Is(err, models.ErrRepliedNotFound):
			res.Error(c, res.InvalidParameter, "被回复的评论不存在")
		default:
			global.Log.Error("post.SubmitComment() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "发表评论失败")
		}
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, comment, "评论已提交")
		return
	}
	if comment.Reviewed {
		utils.SetFlash(c, "success", "评论已发表。")
	} else {
		utils.SetFlash(c, "info", "感谢评论，审核通过后将会展示。")
	}
	c.Redirect(302, fmt.Sprintf("/post/%d", post.ID))
}
