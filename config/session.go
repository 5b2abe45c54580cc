package config

type Session struct {
	Secret       string `mapstructure:"secret"`        // 签名密钥
	Issuer       string `mapstructure:"issuer"`        // 签发者
	Expires      int    `mapstructure:"expires"`       // 普通会话有效期（小时）
	RememberDays int    `mapstructure:"remember_days"` // 勾选"记住我"后的有效期（天）
}
