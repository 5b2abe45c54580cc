package auth

import (
	"bluelog/global"
	"bluelog/middleware"
	"bluelog/models/res"
	"bluelog/service/redis_ser"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Logout 退出登录，注销当前会话令牌并清除cookie
func (a *Auth) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c)

	claims := middleware.CurrentClaims(c)
	if claims != nil && token != "" {
		if err := redis_ser.InvalidateSession(token, utils.TokenRemainingTTL(claims)); err != nil {
			global.Log.Error("redis_ser.InvalidateSession() failed", zap.String("error", err.Error()))
			res.Error(c, res.ServerError, "登出失败")
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	global.Log.Info("管理员退出成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))

	if c.ContentType() == binding.MIMEJSON {
		res.Success(c, nil)
		return
	}
	utils.SetFlash(c, "info", "已退出登录。")
	utils.RedirectBack(c, "/")
}
