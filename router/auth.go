package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) AuthRouter() {
	authApi := api.AppGroupApp.AuthApi
	authRouter := router.Group("auth")
	authRouter.POST("login", authApi.Login)
	authRouter.GET("logout", middleware.SessionAuth(), authApi.Logout)
	authRouter.POST("logout", middleware.SessionAuth(), authApi.Logout)
}
