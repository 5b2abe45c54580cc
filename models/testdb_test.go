package models

import (
	"testing"

	"bluelog/global"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试用独立的内存数据库，互不影响
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&AdminModel{},
		&CategoryModel{},
		&PostModel{},
		&CommentModel{},
		&LinkModel{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	global.DB = db
	global.Log = zap.NewNop().Sugar()

	if err := EnsureDefaultCategory(); err != nil {
		t.Fatalf("创建默认分类失败: %v", err)
	}
}

// mustCreateCategory 测试辅助，创建分类
func mustCreateCategory(t *testing.T, name string) *CategoryModel {
	t.Helper()
	category := &CategoryModel{Name: name}
	if err := category.Create(); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	return category
}

// mustCreatePost 测试辅助，创建博文
func mustCreatePost(t *testing.T, title string, categoryID uint) *PostModel {
	t.Helper()
	post := &PostModel{
		Title:      title,
		Body:       "# " + title,
		CanComment: true,
		CategoryID: categoryID,
	}
	if err := post.Create(); err != nil {
		t.Fatalf("创建博文失败: %v", err)
	}
	return post
}
