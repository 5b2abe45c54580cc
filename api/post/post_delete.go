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

// PostDelete 删除博文及其全部评论
func (p *Post) PostDelete(c *gin.Context) {
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

	if err := post.Delete(); err != nil {
		global.Log.Error("post.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除博文失败")
		return
	}

	if c.ContentType() == binding.MIMEJSON {
		res.SuccessWithMsg(c, nil, "博文已删除")
		return
	}
	utils.SetFlash(c, "success", "博文已删除。")
	utils.RedirectBack(c, "/admin/post/manage")
}
