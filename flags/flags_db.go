package flags

import (
	"bluelog/global"
	"bluelog/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.Set("gorm:table_options", "ENGINE=InnoDB").
		AutoMigrate(&models.AdminModel{},
			&models.CategoryModel{},
			&models.PostModel{},
			&models.CommentModel{},
			&models.LinkModel{},
		)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}
	if err := models.EnsureDefaultCategory(); err != nil {
		global.Log.Error("创建默认分类失败", zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("生成数据库表结构成功", zap.String("method", "DB"), zap.String("path", "flags/flags_db.go"))
	return nil

}
