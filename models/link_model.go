package models

import (
	"fmt"

	"bluelog/global"

	"gorm.io/gorm"
)

// LinkModel 外部链接模型
type LinkModel struct {
	MODEL `json:","`
	Name  string `json:"name" gorm:"size:30;not null"`
	URL   string `json:"url" gorm:"size:255;not null"`
}

// Create 创建链接
func (l *LinkModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return fmt.Errorf("创建链接失败: %w", err)
		}
		return nil
	})
}

// Update 更新链接
func (l *LinkModel) Update(name, url string) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name": name,
			"url":  url,
		}
		if err := tx.Model(l).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新链接失败: %w", err)
		}
		return nil
	})
}

// Delete 删除链接
func (l *LinkModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(l).Error; err != nil {
			return fmt.Errorf("删除链接失败: %w", err)
		}
		return nil
	})
}

// LinkList 获取全部链接，按名称排序
func LinkList() ([]LinkModel, error) {
	var links []LinkModel
	if err := global.DB.Order("name").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("获取链接列表失败: %w", err)
	}
	return links, nil
}
