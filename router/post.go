package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) PostRouter() {
	postApi := api.AppGroupApp.PostApi
	postRouter := router.Group("admin/post", middleware.SessionAuth())
	postRouter.GET("manage", postApi.PostManage)
	postRouter.GET("new", postApi.PostNewForm)
	postRouter.POST("new", postApi.PostNew)
	postRouter.GET(":id/edit", postApi.PostDetail)
	postRouter.POST(":id/edit", postApi.PostEdit)
	postRouter.POST(":id/delete", postApi.PostDelete)
	postRouter.POST(":id/set-comment", postApi.PostSetComment)
}
