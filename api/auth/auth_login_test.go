package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bluelog/config"
	"bluelog/global"
	"bluelog/middleware"
	"bluelog/models"
	"bluelog/models/res"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLoginTest(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminModel{}))

	global.DB = db
	global.Redis = nil
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Session: config.Session{
			Secret:       "test-secret",
			Issuer:       "bluelog",
			Expires:      12,
			RememberDays: 7,
		},
	}

	_, err = models.InitAdmin("admin", "s3cret")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	authApi := new(Auth)
	router.POST("/auth/login", authApi.Login)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body map[string]interface{}) (*httptest.ResponseRecorder, res.StandardResponse) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var response res.StandardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return recorder, response
}

func TestLoginSuccess(t *testing.T) {
	router := setupLoginTest(t)

	recorder, response := postLogin(t, router, map[string]interface{}{
		"username": "admin",
		"password": "s3cret",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Data)

	cookieSet := false
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.Value != "" {
			cookieSet = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, cookieSet)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupLoginTest(t)

	recorder, response := postLogin(t, router, map[string]interface{}{
		"username": "admin",
		"password": "wrong",
	})

	assert.False(t, response.Success)
	assert.Equal(t, res.PasswordError, response.Code)
	assert.Equal(t, "用户名或密码错误", response.Message)
	for _, cookie := range recorder.Result().Cookies() {
		assert.NotEqual(t, middleware.SessionCookie, cookie.Name)
	}
}

func TestLoginWrongUsernameSameMessage(t *testing.T) {
	router := setupLoginTest(t)

	_, response := postLogin(t, router, map[string]interface{}{
		"username": "nobody",
		"password": "s3cret",
	})

	assert.False(t, response.Success)
	assert.Equal(t, "用户名或密码错误", response.Message)
}

func TestLoginMissingFields(t *testing.T) {
	router := setupLoginTest(t)

	_, response := postLogin(t, router, map[string]interface{}{
		"username": "admin",
	})

	assert.False(t, response.Success)
	assert.Equal(t, res.InvalidParameter, response.Code)
}
