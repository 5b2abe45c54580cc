package list_ser

import (
	"testing"

	"bluelog/global"
	"bluelog/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.CategoryModel{},
		&models.PostModel{},
		&models.CommentModel{},
	))

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	require.NoError(t, models.EnsureDefaultCategory())
}

func seedPosts(t *testing.T, titles ...string) {
	t.Helper()
	for _, title := range titles {
		post := &models.PostModel{
			Title:      title,
			Body:       "body",
			CanComment: true,
			CategoryID: models.DefaultCategoryID,
		}
		require.NoError(t, post.Create())
	}
}

func TestComListPagination(t *testing.T) {
	setupTestDB(t)
	seedPosts(t, "a", "b", "c", "d", "e")

	list, total, err := ComList(models.PostModel{}, Option{
		PageInfo: models.PageInfo{Page: 1, PageSize: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 2)

	list, total, err = ComList(models.PostModel{}, Option{
		PageInfo: models.PageInfo{Page: 3, PageSize: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 1)
}

func TestComListLikeSearch(t *testing.T) {
	setupTestDB(t)
	seedPosts(t, "Go并发模式", "Gin入门", "周末随笔")

	list, total, err := ComList(models.PostModel{}, Option{
		PageInfo: models.PageInfo{Key: "Gin"},
		Likes:    []string{"title"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Gin入门", list[0].Title)
}

func TestComListWhereAndPreload(t *testing.T) {
	setupTestDB(t)

	tech := &models.CategoryModel{Name: "tech"}
	require.NoError(t, tech.Create())
	seedPosts(t, "default-post")
	post := &models.PostModel{Title: "tech-post", Body: "body", CanComment: true, CategoryID: tech.ID}
	require.NoError(t, post.Create())

	list, total, err := ComList(models.PostModel{}, Option{
		Where:   global.DB.Where("category_id = ?", tech.ID),
		Preload: []string{"Category"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "tech-post", list[0].Title)
	assert.Equal(t, "tech", list[0].Category.Name)
}
