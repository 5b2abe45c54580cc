package models

import (
	"testing"

	"bluelog/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoleAdmin(t *testing.T) {
	setupTestDB(t)

	_, err := SoleAdmin()
	require.ErrorIs(t, err, ErrAdminNotFound)

	created, err := InitAdmin("admin", "s3cret")
	require.NoError(t, err)

	admin, err := SoleAdmin()
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)
	assert.True(t, admin.ValidatePassword("s3cret"))
	assert.False(t, admin.ValidatePassword("wrong"))
	assert.NotContains(t, admin.PasswordHash, "s3cret")
}

func TestInitAdminIdempotent(t *testing.T) {
	setupTestDB(t)

	first, err := InitAdmin("admin", "old-pass")
	require.NoError(t, err)

	second, err := InitAdmin("boss", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, global.DB.Model(&AdminModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	admin, err := SoleAdmin()
	require.NoError(t, err)
	assert.Equal(t, "boss", admin.Username)
	assert.True(t, admin.ValidatePassword("new-pass"))
	assert.False(t, admin.ValidatePassword("old-pass"))
}

func TestUpdateSettings(t *testing.T) {
	setupTestDB(t)

	_, err := InitAdmin("admin", "s3cret")
	require.NoError(t, err)

	admin, err := SoleAdmin()
	require.NoError(t, err)
	require.NoError(t, admin.UpdateSettings("小明", "我的博客", "记点东西", "关于页内容"))

	reloaded, err := SoleAdmin()
	require.NoError(t, err)
	assert.Equal(t, "小明", reloaded.Name)
	assert.Equal(t, "我的博客", reloaded.BlogTitle)
	assert.Equal(t, "记点东西", reloaded.BlogSubTitle)
	assert.Equal(t, "关于页内容", reloaded.About)
	// 登录凭据不受设置更新影响
	assert.True(t, reloaded.ValidatePassword("s3cret"))
}
