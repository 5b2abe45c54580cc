package category

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryManage 后台分类列表，带各分类的博文数
func (ca *Category) CategoryManage(c *gin.Context) {
	list, err := models.CategoryListWithPostCount()
	if err != nil {
		global.Log.Error("models.CategoryListWithPostCount() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取分类列表失败")
		return
	}
	res.Success(c, list)
}
