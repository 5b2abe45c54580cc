package system

import (
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
)

// FlashList 取出并清空当前的提示消息，消息只被消费一次
func (s *System) FlashList(c *gin.Context) {
	flashes := make([]utils.Flash, 0, 1)
	if flash, ok := utils.TakeFlash(c); ok {
		flashes = append(flashes, flash)
	}
	res.Success(c, flashes)
}
