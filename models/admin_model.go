package models

import (
	"errors"
	"fmt"

	"bluelog/global"
	"bluelog/utils"

	"gorm.io/gorm"
)

// AdminModel 管理员模型，整个博客只存在一条管理员记录
type AdminModel struct {
	MODEL        `json:","`
	Username     string `json:"username" gorm:"size:20;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:128"`
	BlogTitle    string `json:"blog_title" gorm:"size:60"`
	BlogSubTitle string `json:"blog_sub_title" gorm:"size:100"`
	Name         string `json:"name" gorm:"size:70"` // 展示用的名字
	About        string `json:"about" gorm:"type:text"`
}

var (
	ErrAdminNotFound = errors.New("管理员账号不存在")
	ErrAdminMultiple = errors.New("存在多条管理员记录")
)

// SoleAdmin 获取唯一的管理员记录
// 不依赖"取第一行"的隐式约定，零条或多条都返回明确错误
func SoleAdmin() (*AdminModel, error) {
	var count int64
	if err := global.DB.Model(&AdminModel{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("查询管理员记录失败: %w", err)
	}
	if count == 0 {
		return nil, ErrAdminNotFound
	}
	if count > 1 {
		return nil, ErrAdminMultiple
	}

	var admin AdminModel
	if err := global.DB.Take(&admin).Error; err != nil {
		return nil, fmt.Errorf("查询管理员记录失败: %w", err)
	}
	return &admin, nil
}

// SetPassword 密码散列后存储，明文不落库
func (a *AdminModel) SetPassword(password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("密码处理失败: %w", err)
	}
	a.PasswordHash = hash
	return nil
}

// ValidatePassword 校验密码
func (a *AdminModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(a.PasswordHash, password)
}

// UpdateSettings 更新博客设置（展示字段）
func (a *AdminModel) UpdateSettings(name, blogTitle, blogSubTitle, about string) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":           name,
			"blog_title":     blogTitle,
			"blog_sub_title": blogSubTitle,
			"about":          about,
		}
		if err := tx.Model(a).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新设置失败: %w", err)
		}
		return nil
	})
}

// InitAdmin 创建或更新管理员账号，由初始化命令调用
func InitAdmin(username, password string) (*AdminModel, error) {
	admin, err := SoleAdmin()
	switch {
	case err == nil:
		// 已存在则只更新用户名和密码
		if err := admin.SetPassword(password); err != nil {
			return nil, err
		}
		admin.Username = username
		if err := global.DB.Model(admin).
			Updates(map[string]interface{}{
				"username":      admin.Username,
				"password_hash": admin.PasswordHash,
			}).Error; err != nil {
			return nil, fmt.Errorf("更新管理员失败: %w", err)
		}
		return admin, nil
	case errors.Is(err, ErrAdminNotFound):
		admin = &AdminModel{
			Username:     username,
			BlogTitle:    "Bluelog",
			BlogSubTitle: "一个人的博客",
			Name:         "Admin",
			About:        "关于我",
		}
		if err := admin.SetPassword(password); err != nil {
			return nil, err
		}
		if err := global.DB.Create(admin).Error; err != nil {
			return nil, fmt.Errorf("创建管理员失败: %w", err)
		}
		return admin, nil
	default:
		return nil, err
	}
}
