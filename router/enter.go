package router

import (
	"bluelog/core"
	"bluelog/global"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	//设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(utils.Cors())

	router.NoRoute(func(c *gin.Context) {
		res.NotFoundError(c, "页面不存在")
	})

	//创建路由组
	rootGroup := router.Group("")
	routerGroupApp := RouterGroup{rootGroup}
	routerGroupApp.BlogRouter()
	routerGroupApp.AuthRouter()
	routerGroupApp.SystemRouter()
	routerGroupApp.PostRouter()
	routerGroupApp.CommentRouter()
	routerGroupApp.CategoryRouter()
	routerGroupApp.LinkRouter()
	routerGroupApp.SettingRouter()
	return router
}
