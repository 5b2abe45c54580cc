package comment

import (
	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/service/list_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommentManageRequest struct {
	models.PageInfo
	Filter string `json:"filter" form:"filter"` // all / unreviewed / admin
}

// filterWhere 评论筛选条件，未知的filter按all处理
func filterWhere(filter string) *gorm.DB {
	switch filter {
	case "unreviewed", "unread":
		return global.DB.Where("reviewed = ?", false)
	case "admin":
		return global.DB.Where("from_admin = ?", true)
	default:
		return nil
	}
}

// CommentManage 后台评论列表，按筛选维度分页
func (co *Comment) CommentManage(c *gin.Context) {
	var req CommentManageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if req.PageSize <= 0 {
		req.PageSize = global.Config.Blog.CommentPerPage
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.Page <= 0 {
		req.Page = 1
	}

	list, total, err := list_ser.ComList(models.CommentModel{}, list_ser.Option{
		PageInfo: req.PageInfo,
		Likes:    []string{"author", "body"},
		Where:    filterWhere(req.Filter),
	})
	if err != nil {
		global.Log.Error("list_ser.ComList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取评论列表失败")
		return
	}
	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

// CommentUnreviewedCount 未审核评论数量，后台角标用
func (co *Comment) CommentUnreviewedCount(c *gin.Context) {
	count, err := models.UnreviewedCommentCount()
	if err != nil {
		global.Log.Error("models.UnreviewedCommentCount() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "统计未审核评论失败")
		return
	}
	res.Success(c, gin.H{"count": count})
}
