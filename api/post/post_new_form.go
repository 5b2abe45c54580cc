package post

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostNewForm 发表博文的表单数据，返回可选的分类列表
func (p *Post) PostNewForm(c *gin.Context) {
	list, err := models.CategoryListWithPostCount()
	if err != nil {
		global.Log.Error("models.CategoryListWithPostCount() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取分类列表失败")
		return
	}
	res.Success(c, gin.H{"categories": list})
}
