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

// CommentDelete 删除评论，其下所有回复一并删除
func (co *Comment) CommentDelete(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.CommentDelete(idReq.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "评论不存在")
			return
		}
		global.Log.Error("models.CommentDelete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除评论失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "评论已删除")
		return
	}
	utils.SetFlash(c, "success", "评论已删除。")
	utils.RedirectBack(c, "/admin/comment/manage")
}
