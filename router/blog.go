package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

// BlogRouter 公开的博客前台接口
func (router RouterGroup) BlogRouter() {
	blogApi := api.AppGroupApp.BlogApi
	commentApi := api.AppGroupApp.CommentApi
	router.GET("", blogApi.BlogIndex)
	router.GET("post/:id", blogApi.BlogPost)
	router.POST("post/:id/comment", middleware.SessionOptional(), commentApi.CommentSubmit)
	router.GET("category/:id", blogApi.BlogCategory)
	router.GET("categories", blogApi.BlogCategoryList)
	router.GET("about", blogApi.BlogAbout)
	router.GET("links", blogApi.BlogLinks)
}
