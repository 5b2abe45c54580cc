package config

type Config struct {
	Mysql   Mysql   `mapstructure:"mysql"`
	Redis   Redis   `mapstructure:"redis"`
	Log     Log     `mapstructure:"log"`
	System  System  `mapstructure:"system"`
	Session Session `mapstructure:"session"`
	Captcha Captcha `mapstructure:"captcha"`
	Blog    Blog    `mapstructure:"blog"`
	Mail    Mail    `mapstructure:"mail"`
}
