package blog

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AboutResponse struct {
	Name         string `json:"name"`
	BlogTitle    string `json:"blog_title"`
	BlogSubTitle string `json:"blog_sub_title"`
	About        string `json:"about"`
	AboutHTML    string `json:"about_html"`
}

// BlogAbout 关于页，展示管理员的自述
func (b *Blog) BlogAbout(c *gin.Context) {
	admin, err := models.SoleAdmin()
	if err != nil {
		global.Log.Error("models.SoleAdmin() failed", zap.String("error", err.Error()))
		res.NotFoundError(c, "博客尚未初始化")
		return
	}

	aboutHTML, err := utils.ConvertMarkdownToHTML(admin.About)
	if err != nil && !errors.Is(err, utils.ErrEmptyContent) {
		global.Log.Error("utils.ConvertMarkdownToHTML() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "渲染页面失败")
		return
	}

	res.Success(c, AboutResponse{
		Name:         admin.Name,
		BlogTitle:    admin.BlogTitle,
		BlogSubTitle: admin.BlogSubTitle,
		About:        admin.About,
		AboutHTML:    aboutHTML,
	})
}
