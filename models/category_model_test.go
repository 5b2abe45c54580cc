package models

import (
	"testing"

	"bluelog/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateDuplicateName(t *testing.T) {
	setupTestDB(t)

	mustCreateCategory(t, "tech")

	dup := &CategoryModel{Name: "tech"}
	err := dup.Create()
	require.ErrorIs(t, err, ErrCategoryNameExists)

	var count int64
	require.NoError(t, global.DB.Model(&CategoryModel{}).Count(&count).Error)
	// 默认分类 + tech，重名创建不会落库
	assert.Equal(t, int64(2), count)
}

func TestCategoryRenameDuplicateName(t *testing.T) {
	setupTestDB(t)

	mustCreateCategory(t, "tech")
	life := mustCreateCategory(t, "life")

	err := life.Rename("tech")
	require.ErrorIs(t, err, ErrCategoryNameExists)

	// 改回自己的名字不算重名
	require.NoError(t, life.Rename("life"))
}

func TestDefaultCategoryProtected(t *testing.T) {
	setupTestDB(t)

	var def CategoryModel
	require.NoError(t, global.DB.First(&def, DefaultCategoryID).Error)

	require.ErrorIs(t, def.Rename("renamed"), ErrCategoryImmutable)
	require.ErrorIs(t, CategoryDelete(DefaultCategoryID), ErrCategoryImmutable)

	var count int64
	require.NoError(t, global.DB.Model(&CategoryModel{}).Where("id = ?", DefaultCategoryID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCategoryDeleteReassignsPosts(t *testing.T) {
	setupTestDB(t)

	tech := mustCreateCategory(t, "tech")
	post := mustCreatePost(t, "hello", tech.ID)

	require.NoError(t, CategoryDelete(tech.ID))

	var reloaded PostModel
	require.NoError(t, global.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, DefaultCategoryID, reloaded.CategoryID)

	var count int64
	require.NoError(t, global.DB.Model(&CategoryModel{}).Where("id = ?", tech.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCategoryListWithPostCount(t *testing.T) {
	setupTestDB(t)

	tech := mustCreateCategory(t, "tech")
	mustCreatePost(t, "a", tech.ID)
	mustCreatePost(t, "b", tech.ID)

	list, err := CategoryListWithPostCount()
	require.NoError(t, err)
	require.Len(t, list, 2)

	counts := map[string]int64{}
	for _, item := range list {
		counts[item.Name] = item.PostCount
	}
	assert.Equal(t, int64(2), counts["tech"])
	assert.Equal(t, int64(0), counts["默认分类"])
}
