package auth

import (
	"errors"

	"bluelog/api/system"
	"bluelog/global"
	"bluelog/middleware"
	"bluelog/models"
	"bluelog/models/res"
	"bluelog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=1,max=20"`
	Password  string `json:"password" form:"password" validate:"required,min=1,max=128"`
	Remember  bool   `json:"remember" form:"remember"`
	Captcha   string `json:"captcha" form:"captcha"`
	CaptchaID string `json:"captcha_id" form:"captcha_id"`
}

// Login 管理员登录，成功后写入会话cookie并跳回来源页面
func (a *Auth) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		global.Log.Error("c.ShouldBind() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaID == "" || !system.Store.Verify(req.CaptchaID, req.Captcha, true) {
			res.Error(c, res.InvalidParameter, "验证码错误")
			return
		}
	}

	admin, err := models.SoleAdmin()
	if err != nil {
		if errors.Is(err, models.ErrAdminNotFound) {
			res.Error(c, res.AdminNotFound, "管理员账号不存在")
			return
		}
		global.Log.Error("models.SoleAdmin() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "服务器错误")
		return
	}

	// 用户名错误和密码错误返回同一条消息，避免账号枚举
	if req.Username != admin.Username || !admin.ValidatePassword(req.Password) {
		res.Error(c, res.PasswordError, "用户名或密码错误")
		return
	}

	token, err := utils.GenerateSessionToken(admin.ID, admin.Username, req.Remember)
	if err != nil {
		global.Log.Error("utils.GenerateSessionToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成会话令牌失败")
		return
	}

	maxAge := global.Config.Session.Expires * 3600
	if req.Remember {
		maxAge = global.Config.Session.RememberDays * 24 * 3600
	}
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)

	global.Log.Info("管理员登录成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))

	if c.ContentType() == binding.MIMEJSON {
		res.Success(c, token)
		return
	}
	utils.SetFlash(c, "info", "欢迎回来。")
	utils.RedirectBack(c, "/")
}
