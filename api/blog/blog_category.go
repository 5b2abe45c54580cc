package blog

import (
	"errors"

	"bluelog/global"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/service/list_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryPostsResponse struct {
	Category models.CategoryModel             `json:"category"`
	Posts    res.PageData[[]models.PostModel] `json:"posts"`
}

// BlogCategory 分类页，该分类下的博文按时间倒序分页
func (b *Blog) BlogCategory(c *gin.Context) {
	var idReq models.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var pageInfo models.PageInfo
	if err := c.ShouldBindQuery(&pageInfo); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	pageInfo.PageSize = global.Config.Blog.PostPerPage
	if pageInfo.PageSize <= 0 {
		pageInfo.PageSize = 10
	}

	var category models.CategoryModel
	if err := global.DB.First(&category, idReq.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.NotFoundError(c, "分类不存在")
			return
		}
		global.Log.Error("查询分类失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询分类失败")
		return
	}

	list, total, err := list_ser.ComList(models.PostModel{}, list_ser.Option{
		PageInfo: pageInfo,
		Where:    global.DB.Where("category_id = ?", category.ID),
		Preload:  []string{"Category"},
	})
	if err != nil {
		global.Log.Error("list_ser.ComList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取博文列表失败")
		return
	}

	if pageInfo.Page <= 0 {
		pageInfo.Page = 1
	}
	totalPages := (int(total) + pageInfo.PageSize - 1) / pageInfo.PageSize
	res.Success(c, CategoryPostsResponse{
		Category: category,
		Posts: res.PageData[[]models.PostModel]{
			List:       list,
			Total:      total,
			Page:       pageInfo.Page,
			PageSize:   pageInfo.PageSize,
			TotalPages: totalPages,
			HasMore:    pageInfo.Page < totalPages,
		},
	})
}

// BlogCategoryList 全部分类及博文数，侧边栏用
func (b *Blog) BlogCategoryList(c *gin.Context) {
	list, err := models.CategoryListWithPostCount()
	if err != nil {
		global.Log.Error("models.CategoryListWithPostCount() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取分类列表失败")
		return
	}
	res.Success(c, list)
}
