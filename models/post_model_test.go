package models

import (
	"testing"

	"bluelog/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostCreateUnknownCategory(t *testing.T) {
	setupTestDB(t)

	post := &PostModel{Title: "hello", Body: "body", CategoryID: 999}
	err := post.Create()
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, global.DB.Model(&PostModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	other := mustCreatePost(t, "other", DefaultCategoryID)

	_, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "one"})
	require.NoError(t, err)
	_, err = post.SubmitComment(CommentSubmitParams{Author: "b", Email: "b@b.c", Body: "two"})
	require.NoError(t, err)
	kept, err := other.SubmitComment(CommentSubmitParams{Author: "c", Email: "c@b.c", Body: "keep"})
	require.NoError(t, err)

	require.NoError(t, post.Delete())

	var commentCount int64
	require.NoError(t, global.DB.Model(&CommentModel{}).Count(&commentCount).Error)
	assert.Equal(t, int64(1), commentCount)

	var reloaded CommentModel
	require.NoError(t, global.DB.First(&reloaded, kept.ID).Error)
}

func TestPostToggleComment(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	require.True(t, post.CanComment)

	require.NoError(t, post.ToggleComment())
	assert.False(t, post.CanComment)

	var reloaded PostModel
	require.NoError(t, global.DB.First(&reloaded, post.ID).Error)
	assert.False(t, reloaded.CanComment)

	require.NoError(t, post.ToggleComment())
	assert.True(t, post.CanComment)
}

func TestPostUpdateKeepsCreatedAt(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	created := post.CreatedAt

	tech := mustCreateCategory(t, "tech")
	require.NoError(t, post.Update("updated", "new body", tech.ID))

	reloaded, err := PostGet(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", reloaded.Title)
	assert.Equal(t, tech.ID, reloaded.CategoryID)
	assert.Equal(t, created.String(), reloaded.CreatedAt.String())
}
