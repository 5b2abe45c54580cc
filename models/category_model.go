package models

import (
	"errors"
	"fmt"

	"bluelog/global"

	"gorm.io/gorm"
)

// DefaultCategoryID 默认分类的ID，该分类不可改名、不可删除
// 删除其他分类时，其下博文全部划归默认分类
const DefaultCategoryID uint = 1

// CategoryModel 博文分类模型
type CategoryModel struct {
	MODEL `json:","`
	Name  string       `json:"name" gorm:"size:30;uniqueIndex"`
	Posts []*PostModel `json:"-" gorm:"foreignKey:CategoryID"`
}

var (
	ErrCategoryNameExists = errors.New("分类名称已存在")
	ErrCategoryImmutable  = errors.New("默认分类不允许修改或删除")
)

// EnsureDefaultCategory 确保默认分类存在，由建表命令调用
func EnsureDefaultCategory() error {
	category := CategoryModel{MODEL: MODEL{ID: DefaultCategoryID}, Name: "默认分类"}
	if err := global.DB.FirstOrCreate(&category, "id = ?", DefaultCategoryID).Error; err != nil {
		return fmt.Errorf("创建默认分类失败: %w", err)
	}
	return nil
}

// nameExists 分类名查重，大小写敏感的精确匹配，excludeID用于改名时排除自身
func nameExists(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	query := tx.Model(&CategoryModel{}).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("检查分类名称失败: %w", err)
	}
	return count > 0, nil
}

// Create 创建分类，重名返回ErrCategoryNameExists
func (c *CategoryModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := nameExists(tx, c.Name, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrCategoryNameExists
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("创建分类失败: %w", err)
		}
		return nil
	})
}

// Rename 分类改名，默认分类不可改名，改名同样查重
func (c *CategoryModel) Rename(name string) error {
	if c.ID == DefaultCategoryID {
		return ErrCategoryImmutable
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := nameExists(tx, name, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrCategoryNameExists
		}
		if err := tx.Model(c).Update("name", name).Error; err != nil {
			return fmt.Errorf("更新分类失败: %w", err)
		}
		return nil
	})
}

// CategoryDelete 删除分类
// 先把该分类下的博文全部划归默认分类，再删除分类本身，不删除任何博文
func CategoryDelete(categoryID uint) error {
	if categoryID == DefaultCategoryID {
		return ErrCategoryImmutable
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var category CategoryModel
		if err := tx.First(&category, categoryID).Error; err != nil {
			return err
		}
		if err := tx.Model(&PostModel{}).
			Where("category_id = ?", categoryID).
			Update("category_id", DefaultCategoryID).Error; err != nil {
			return fmt.Errorf("划归博文到默认分类失败: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("删除分类失败: %w", err)
		}
		return nil
	})
}

// CategoryExist 检查分类是否存在
func CategoryExist(categoryID uint) (bool, error) {
	var count int64
	err := global.DB.Model(&CategoryModel{}).Where("id = ?", categoryID).Count(&count).Error
	return count > 0, err
}

// CategoryWithPostCount 带博文数量的分类，用于后台管理列表
type CategoryWithPostCount struct {
	CategoryModel
	PostCount int64 `json:"post_count"`
}

// CategoryListWithPostCount 获取全部分类及各自的博文数量，按名称排序
func CategoryListWithPostCount() ([]CategoryWithPostCount, error) {
	var categories []CategoryModel
	if err := global.DB.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("获取分类列表失败: %w", err)
	}

	list := make([]CategoryWithPostCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		if err := global.DB.Model(&PostModel{}).
			Where("category_id = ?", category.ID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("统计分类博文数失败: %w", err)
		}
		list = append(list, CategoryWithPostCount{CategoryModel: category, PostCount: count})
	}
	return list, nil
}
