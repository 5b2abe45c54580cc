package main

import (
	"fmt"

	"bluelog/core"
	"bluelog/flags"
	"bluelog/global"
	"bluelog/models"
	"bluelog/router"
	"bluelog/utils"

	"go.uber.org/zap"
)

func main() {
	var err error
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化数据库
	global.DB = core.InitGorm()
	// 初始化redis
	global.Redis = core.InitRedis()
	// 初始化雪花节点，用于生成请求ID
	if err = utils.Init(global.Config.System.StartTime, global.Config.System.MachineID); err != nil {
		global.Log.Fatal("初始化雪花节点失败", zap.String("error", err.Error()))
	}
	// 初始化敏感词过滤器
	if err = models.InitSensitiveFilter(global.Config.Blog.SensitiveWordsFile); err != nil {
		global.Log.Fatal("初始化敏感词过滤器失败", zap.String("error", err.Error()))
	}
	// 初始化命令行参数
	flags.Newflags()
	// 初始化路由
	router := router.InitRouter()
	// 启动服务
	err = router.Run(fmt.Sprintf(":%d", global.Config.System.Port))
	if err != nil {
		global.Log.Fatal("启动服务失败", zap.String("error", err.Error()))
	}
}
