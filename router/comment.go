package router

import (
	"bluelog/api"
	"bluelog/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("admin/comment", middleware.SessionAuth())
	commentRouter.GET("manage", commentApi.CommentManage)
	commentRouter.GET("unreviewed-count", commentApi.CommentUnreviewedCount)
	commentRouter.POST(":id/approve", commentApi.CommentApprove)
	commentRouter.POST(":id/delete", commentApi.CommentDelete)
}
