package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) CategoryRouter() {
	categoryApi := api.AppGroupApp.CategoryApi
	categoryRouter := router.Group("admin/category", middleware.SessionAuth())
	categoryRouter.GET("manage", categoryApi.CategoryManage)
	categoryRouter.POST("new", categoryApi.CategoryNew)
	categoryRouter.GET(":id/edit", categoryApi.CategoryDetail)
	categoryRouter.POST(":id/edit", categoryApi.CategoryEdit)
	categoryRouter.POST(":id/delete", categoryApi.CategoryDelete)
}
