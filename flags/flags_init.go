package flags

import (
	"fmt"

	"bluelog/global"
	"bluelog/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Init 创建管理员账号，已存在则只更新用户名和密码
func Init(c *cli.Context) error {
	username := c.String("username")
	password := c.String("password")
	if password == "" {
		return fmt.Errorf("必须通过 --password 指定管理员密码")
	}
	if len(username) > 20 {
		return fmt.Errorf("用户名长度不能超过20")
	}

	admin, err := models.InitAdmin(username, password)
	if err != nil {
		global.Log.Error("管理员创建失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("管理员%s初始化成功,id:%d", admin.Username, admin.ID)
	return nil
}
