package blog

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/service/list_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogIndex 博客首页，博文按发表时间倒序分页
func (b *Blog) BlogIndex(c *gin.Context) {
	var pageInfo models.PageInfo
	if err := c.ShouldBindQuery(&pageInfo); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	pageInfo.PageSize = global.Config.Blog.PostPerPage
	if pageInfo.PageSize <= 0 {
		pageInfo.PageSize = 10
	}
	if pageInfo.Page <= 0 {
		pageInfo.Page = 1
	}

	list, total, err := list_ser.ComList(models.PostModel{}, list_ser.Option{
		PageInfo: pageInfo,
		Preload:  []string{"Category"},
	})
	if err != nil {
		global.Log.Error("list_ser.ComList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取博文列表失败")
		return
	}
	res.SuccessWithPage(c, list, total, pageInfo.Page, pageInfo.PageSize)
}
