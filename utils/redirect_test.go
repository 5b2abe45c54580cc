package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRedirectContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Host = "blog.example.com"
	c.Request = req
	return c, recorder
}

func TestRedirectBackNextParam(t *testing.T) {
	c, recorder := newRedirectContext(t, "/auth/logout?next=/post/3")

	RedirectBack(c, "/")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/post/3", recorder.Header().Get("Location"))
}

func TestRedirectBackRejectsForeignNext(t *testing.T) {
	c, recorder := newRedirectContext(t, "/auth/logout?next=http://evil.example.com/")

	RedirectBack(c, "/")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}

func TestRedirectBackUsesReferer(t *testing.T) {
	c, recorder := newRedirectContext(t, "/auth/logout")
	c.Request.Header.Set("Referer", "http://blog.example.com/post/7")

	RedirectBack(c, "/")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "http://blog.example.com/post/7", recorder.Header().Get("Location"))
}

func TestRedirectBackRejectsForeignReferer(t *testing.T) {
	c, recorder := newRedirectContext(t, "/auth/logout")
	c.Request.Header.Set("Referer", "http://evil.example.com/post/7")

	RedirectBack(c, "/fallback")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/fallback", recorder.Header().Get("Location"))
}

func TestIsSafeURL(t *testing.T) {
	c, _ := newRedirectContext(t, "/")

	assert.True(t, IsSafeURL(c, "/post/1"))
	assert.True(t, IsSafeURL(c, "http://blog.example.com/about"))
	assert.False(t, IsSafeURL(c, "http://evil.example.com/"))
	assert.False(t, IsSafeURL(c, "javascript:alert(1)"))
	assert.False(t, IsSafeURL(c, ""))
}
