package core

import (
	"fmt"
	"log"
	"os"
	"time"

	"bluelog/global"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGorm 初始化Gorm
func InitGorm() *gorm.DB {
	// 验证配置
	if err := validateMysqlConfig(); err != nil {
		global.Log.Fatal("MySQL配置验证失败", zap.String("error", err.Error()))
		return nil
	}

	dsn := global.Config.Mysql.Dsn()
	mysqlLogger := getMysqlLogger()

	// 连接数据库，启动阶段数据库可能尚未就绪，带重试
	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
				Logger: mysqlLogger,
			})
			return err
		},
		retry.Attempts(5),
		retry.Delay(2*time.Second),
		retry.OnRetry(func(n uint, err error) {
			global.Log.Warn("MySQL连接重试中",
				zap.Uint("attempt", n+1),
				zap.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		global.Log.Fatal("MySQL连接失败",
			zap.String("dsn", dsn),
			zap.String("error", err.Error()),
		)
		return nil
	}

	global.Log.Info("MySQL连接成功", zap.String("method", "InitGorm"), zap.String("path", "core/gorm.go"))
	return db
}

// 验证MySQL配置
func validateMysqlConfig() error {
	if global.Config.Mysql.Host == "" {
		return fmt.Errorf("未配置MySQL主机地址")
	}
	if global.Config.Mysql.Port == 0 {
		return fmt.Errorf("未配置MySQL端口")
	}
	if global.Config.Mysql.User == "" {
		return fmt.Errorf("未配置MySQL用户名")
	}
	if global.Config.Mysql.DB == "" {
		return fmt.Errorf("未配置MySQL数据库名")
	}
	return nil
}

// 获取MySQL日志记录器，慢查询阈值来自配置
func getMysqlLogger() logger.Interface {
	level := logger.Error
	if global.Config.System.Env == "debug" {
		level = logger.Info
	}

	slowThreshold := time.Duration(global.Config.Mysql.SlowQueryThreshold) * time.Second
	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}

	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
