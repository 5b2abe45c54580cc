package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) SettingRouter() {
	settingApi := api.AppGroupApp.SettingApi
	settingRouter := router.Group("admin/settings", middleware.SessionAuth())
	settingRouter.GET("", settingApi.SettingGet)
	settingRouter.POST("", settingApi.SettingUpdate)
}
