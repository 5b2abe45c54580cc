package models

import (
	"fmt"

	"bluelog/global"

	"gorm.io/gorm"
)

// PostModel 博文模型
type PostModel struct {
	MODEL      `json:","`
	Title      string          `json:"title" gorm:"size:60;not null"`
	Body       string          `json:"body" gorm:"type:text"` // Markdown正文
	CanComment bool            `json:"can_comment" gorm:"default:true"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Category   CategoryModel   `json:"category" gorm:"foreignKey:CategoryID"`
	Comments   []*CommentModel `json:"-" gorm:"foreignKey:PostID"`
}

// Create 创建博文，分类必须已存在
func (p *PostModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CategoryModel{}).Where("id = ?", p.CategoryID).Count(&count).Error; err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("分类不存在: %w", gorm.ErrRecordNotFound)
		}
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("创建博文失败: %w", err)
		}
		return nil
	})
}

// Update 更新博文，created_at保持不变
func (p *PostModel) Update(title, body string, categoryID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CategoryModel{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("分类不存在: %w", gorm.ErrRecordNotFound)
		}
		updates := map[string]interface{}{
			"title":       title,
			"body":        body,
			"category_id": categoryID,
		}
		if err := tx.Model(p).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新博文失败: %w", err)
		}
		return nil
	})
}

// Delete 删除博文，级联删除其全部评论
func (p *PostModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("删除博文评论失败: %w", err)
		}
		if err := tx.Delete(p).Error; err != nil {
			return fmt.Errorf("删除博文失败: %w", err)
		}
		return nil
	})
}

// ToggleComment 切换评论开关，是翻转而不是直接赋值
func (p *PostModel) ToggleComment() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(p, p.ID).Error; err != nil {
			return err
		}
		p.CanComment = !p.CanComment
		if err := tx.Model(p).Update("can_comment", p.CanComment).Error; err != nil {
			return fmt.Errorf("更新评论开关失败: %w", err)
		}
		return nil
	})
}

// PostGet 按ID获取博文，带分类
func PostGet(postID uint) (*PostModel, error) {
	var post PostModel
	if err := global.DB.Preload("Category").First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
