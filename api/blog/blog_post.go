package blog

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PostDetailResponse struct {
	models.PostModel
	BodyHTML string                 `json:"body_html"`
	Comments []*models.CommentModel `json:"comments"`
}

// BlogPost 博文详情页，正文渲染为HTML，评论只展示已审核的
func (b *Blog) BlogPost(c *gin.Context) {
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

	bodyHTML, err := utils.ConvertMarkdownToHTML(post.Body)
	if err != nil && !errors.Is(err, utils.ErrEmptyContent) {
		global.Log.Error("utils.ConvertMarkdownToHTML() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "渲染博文失败")
		return
	}

	comments, err := models.PostCommentTree(post.ID)
	if err != nil {
		global.Log.Error("models.PostCommentTree() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取评论失败")
		return
	}

	res.Success(c, PostDetailResponse{
		PostModel: *post,
		BodyHTML:  bodyHTML,
		Comments:  comments,
	})
}
