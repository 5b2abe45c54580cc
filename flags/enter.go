package flags

import (
	"os"

	"bluelog/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Newflags() {
	var app = cli.NewApp()
	app.Name = "bluelog"
	app.Usage = "单人博客"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表并确保默认分类存在",
			Action:  DB,
		},
		{
			Name:    "init",
			Aliases: []string{"i"},
			Usage:   "初始化管理员账号",
			Action:  Init,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"u"},
					Usage:   "管理员用户名",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "管理员密码",
				},
			},
		},
		{
			Name:    "fake",
			Aliases: []string{"f"},
			Usage:   "生成测试数据",
			Action:  Fake,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "category",
					Usage: "分类数量",
					Value: 10,
				},
				&cli.IntFlag{
					Name:  "post",
					Usage: "博文数量",
					Value: 50,
				},
				&cli.IntFlag{
					Name:  "comment",
					Usage: "评论数量",
					Value: 100,
				},
				&cli.IntFlag{
					Name:  "link",
					Usage: "链接数量",
					Value: 5,
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)

	}
}
