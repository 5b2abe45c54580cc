package blog

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogLinks 链接页
func (b *Blog) BlogLinks(c *gin.Context) {
	list, err := models.LinkList()
	if err != nil {
		global.Log.Error("models.LinkList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取链接列表失败")
		return
	}
	res.Success(c, list)
}
