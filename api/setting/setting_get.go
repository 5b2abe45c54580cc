package setting

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingResponse struct {
	Name         string `json:"name"`
	BlogTitle    string `json:"blog_title"`
	BlogSubTitle string `json:"blog_sub_title"`
	About        string `json:"about"`
}

// SettingGet 获取博客设置
func (s *Setting) SettingGet(c *gin.Context) {
	admin, err := models.SoleAdmin()
	if err != nil {
		global.Log.Error("models.SoleAdmin() failed", zap.String("error", err.Error()))
		res.Error(c, res.AdminNotFound, "管理员账号不存在")
		return
	}
	res.Success(c, SettingResponse{
		Name:         admin.Name,
		BlogTitle:    admin.BlogTitle,
		BlogSubTitle: admin.BlogSubTitle,
		About:        admin.About,
	})
}
