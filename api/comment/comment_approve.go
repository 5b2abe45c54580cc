package comment

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

// CommentApprove 审核通过评论，使其在博文页可见
func (co *Comment) CommentApprove(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.CommentApprove(idReq.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "评论不存在")
			return
		}
		global.Log.Error("models.CommentApprove() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "审核评论失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "评论已通过审核")
		return
	}
	utils.SetFlash(c, "success", "评论已通过审核。")
	utils.RedirectBack(c, "/admin/comment/manage")
}
