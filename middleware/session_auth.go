package middleware

import (
	"net/http"

	"bluelog/global"
	"bluelog/models/res"
	"bluelog/service/redis_ser"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie 会话令牌cookie名
const SessionCookie = "bluelog_session"

// TokenFromRequest 从请求中取会话令牌，优先cookie，其次Authorization头
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:]
	}
	return ""
}

// SessionAuth 中间件，在进入管理端工作流之前做边界鉴权
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "未登录")
			c.Abort()
			return
		}

		// 已注销的令牌拒绝访问
		blacklisted, err := redis_ser.IsSessionBlacklisted(token)
		if err != nil {
			global.Log.Error("检查会话黑名单失败", zap.Error(err))
			res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
			c.Abort()
			return
		}
		if blacklisted {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "会话已失效")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, err.Error())
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// SessionOptional 中间件，公开接口用
// 携带有效会话则识别出管理员身份，否则按匿名访客处理，绝不中断请求
func SessionOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}
		if blacklisted, err := redis_ser.IsSessionBlacklisted(token); err != nil || blacklisted {
			c.Next()
			return
		}
		if claims, err := utils.ParseSessionToken(token); err == nil {
			c.Set("claims", claims)
		}
		c.Next()
	}
}

// CurrentClaims 取当前请求的会话信息，匿名访客返回nil
func CurrentClaims(c *gin.Context) *utils.SessionClaims {
	value, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := value.(*utils.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
