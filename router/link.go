package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) LinkRouter() {
	linkApi := api.AppGroupApp.LinkApi
	linkRouter := router.Group("admin/link", middleware.SessionAuth())
	linkRouter.GET("manage", linkApi.LinkManage)
	linkRouter.POST("new", linkApi.LinkNew)
	linkRouter.GET(":id/edit", linkApi.LinkDetail)
	linkRouter.POST(":id/edit", linkApi.LinkEdit)
	linkRouter.POST(":id/delete", linkApi.LinkDelete)
}
