package utils

import (
	"errors"
	"time"

	"bluelog/global"

	"github.com/dgrijalva/jwt-go"
)

// SessionClaims 会话令牌载荷
type SessionClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// GenerateSessionToken 生成会话令牌
// remember为true时使用"记住我"的长有效期
func GenerateSessionToken(adminID uint, username string, remember bool) (string, error) {
	expires := time.Duration(global.Config.Session.Expires) * time.Hour
	if remember {
		expires = time.Duration(global.Config.Session.RememberDays) * 24 * time.Hour
	}

	claims := SessionClaims{
		AdminID:  adminID,
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(expires).Unix(),
			Issuer:    global.Config.Session.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Session.Secret))
}

// ParseSessionToken 解析会话令牌
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Session.Secret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("会话已过期")
			} else if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("令牌格式错误")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("令牌签名无效")
			}
		}
		return nil, errors.New("令牌无效")
	}

	if !token.Valid {
		return nil, errors.New("令牌验证失败")
	}

	return &claims, nil
}

// TokenRemainingTTL 令牌剩余有效期，用作黑名单TTL
func TokenRemainingTTL(claims *SessionClaims) time.Duration {
	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < 0 {
		return 0
	}
	return remaining
}
