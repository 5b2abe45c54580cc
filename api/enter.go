package api

import (
	"bluelog/api/auth"
	"bluelog/api/blog"
	"bluelog/api/category"
	"bluelog/api/comment"
	"bluelog/api/link"
	"bluelog/api/post"
	"bluelog/api/setting"
	"bluelog/api/system"
)

type AppGroup struct {
	AuthApi     auth.Auth
	SettingApi  setting.Setting
	PostApi     post.Post
	CommentApi  comment.Comment
	CategoryApi category.Category
	LinkApi     link.Link
	BlogApi     blog.Blog
	SystemApi   system.System
}

var AppGroupApp = new(AppGroup)
