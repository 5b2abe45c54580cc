package config

// Mail 邮件服务配置，评论通知由外部投递层使用
type Mail struct {
	Server   string `mapstructure:"server"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}
