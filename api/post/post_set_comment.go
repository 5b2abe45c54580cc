package post

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

// PostSetComment 翻转博文的评论开关
func (p *Post) PostSetComment(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	post := models.PostModel{MODEL: models.MODEL{ID: idReq.ID}}
	if err := post.ToggleComment(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "博文不存在")
			return
		}
		global.Log.Error("post.ToggleComment() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新评论开关失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, gin.H{"can_comment": post.CanComment}, "评论开关已更新")
		return
	}
	if post.CanComment {
		utils.SetFlash(c, "success", "评论已开启。")
	} else {
		utils.SetFlash(c, "success", "评论已关闭。")
	}
	utils.RedirectBack(c, "/admin/post/manage")
}
