package utils

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "bluelog_flash"

// Flash 闪现消息，跳转后由前端读取并展示一次
type Flash struct {
	Category string `json:"category"` // success / info / warning
	Message  string `json:"message"`
}

// SetFlash 写入闪现消息cookie
func SetFlash(c *gin.Context, category, message string) {
	data, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	c.SetCookie(flashCookie, encoded, 60, "/", "", false, false)
}

// TakeFlash 读取并清除闪现消息
func TakeFlash(c *gin.Context) (Flash, bool) {
	var flash Flash
	encoded, err := c.Cookie(flashCookie)
	if err != nil {
		return flash, false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, false)

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return flash, false
	}
	if err := json.Unmarshal(data, &flash); err != nil {
		return flash, false
	}
	return flash, true
}
