package router

import (
	"bluelog/api"
)

func (router RouterGroup) SystemRouter() {
	systemApi := api.AppGroupApp.SystemApi
	router.GET("captcha", systemApi.CaptchaCreate)
	router.GET("flash", systemApi.FlashList)
}
