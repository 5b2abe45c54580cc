package utils

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// requestScheme 当前请求的协议，优先取反向代理头
func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
		return "https"
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}

// IsSafeURL 对跳转目标做同源验证
// 相对路径相对当前主机解析，协议必须是http/https且主机与当前请求一致
func IsSafeURL(c *gin.Context, target string) bool {
	if target == "" {
		return false
	}

	base := &url.URL{Scheme: requestScheme(c), Host: c.Request.Host}
	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	resolved := base.ResolveReference(parsed)

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return false
	}
	return resolved.Host == c.Request.Host
}

// RedirectBack 状态变更后跳回来源页面
// 依次尝试next查询参数和Referer，都不可用或未通过同源验证时跳转默认地址
func RedirectBack(c *gin.Context, defaultPath string) {
	for _, target := range []string{c.Query("next"), c.Request.Referer()} {
		if target == "" {
			continue
		}
		if IsSafeURL(c, target) {
			c.Redirect(http.StatusFound, target)
			return
		}
	}
	c.Redirect(http.StatusFound, defaultPath)
}
