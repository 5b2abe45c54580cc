package models

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"bluelog/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CommentModel 评论模型，replied_id自引用形成回复链
type CommentModel struct {
	MODEL     `json:","`
	Author    string          `json:"author" gorm:"size:30;not null"`
	Email     string          `json:"email" gorm:"size:254;not null"`
	Site      string          `json:"site" gorm:"size:255"`
	Body      string          `json:"body" gorm:"type:text;not null"`
	FromAdmin bool            `json:"from_admin" gorm:"default:false"`
	Reviewed  bool            `json:"reviewed" gorm:"default:false;index"`
	RepliedID *uint           `json:"replied_id" gorm:"index"` // 被回复的评论ID，可为空
	PostID    uint            `json:"post_id" gorm:"not null;index"`
	Replies   []*CommentModel `json:"replies" gorm:"foreignKey:RepliedID"`
}

var (
	ErrCommentClosed   = errors.New("该博文已关闭评论")
	ErrRepliedNotFound = errors.New("被回复的评论不存在")
)

var sensitiveFilter *sensitive.Filter

// InitSensitiveFilter 从配置的词表文件初始化敏感词过滤器
// 未配置词表时过滤器为空，评论只做HTML清理
func InitSensitiveFilter(filePath string) error {
	if filePath == "" {
		return nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("打开敏感词文件失败: %w", err)
	}
	defer file.Close()

	filter := sensitive.New()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		filter.AddWord(word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取敏感词文件出错: %w", err)
	}

	sensitiveFilter = filter
	return nil
}

// filterBody 过滤评论正文：清理HTML，再替换敏感词
func filterBody(body string) string {
	body = bluemonday.UGCPolicy().Sanitize(body)
	if sensitiveFilter != nil {
		body = sensitiveFilter.Replace(body, '*')
	}
	return body
}

// CommentSubmitParams 评论提交参数
type CommentSubmitParams struct {
	Author    string
	Email     string
	Site      string
	Body      string
	RepliedID *uint
	FromAdmin bool // 管理员发表的评论视为已审核
}

// SubmitComment 向博文提交一条评论
// 博文关闭评论时拒绝；回复目标必须存在且属于同一篇博文
func (p *PostModel) SubmitComment(params CommentSubmitParams) (*CommentModel, error) {
	if !p.CanComment {
		return nil, ErrCommentClosed
	}

	comment := &CommentModel{
		Author:    params.Author,
		Email:     params.Email,
		Site:      params.Site,
		Body:      filterBody(params.Body),
		FromAdmin: params.FromAdmin,
		Reviewed:  params.FromAdmin,
		RepliedID: params.RepliedID,
		PostID:    p.ID,
	}

	err := global.DB.Transaction(func(tx *gorm.DB) error {
		if params.RepliedID != nil {
			var count int64
			if err := tx.Model(&CommentModel{}).
				Where("id = ? AND post_id = ?", *params.RepliedID, p.ID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("检查被回复评论失败: %w", err)
			}
			if count == 0 {
				return ErrRepliedNotFound
			}
		}
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// CommentApprove 审核通过评论
func CommentApprove(commentID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var comment CommentModel
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}
		if err := tx.Model(&comment).Update("reviewed", true).Error; err != nil {
			return fmt.Errorf("审核评论失败: %w", err)
		}
		return nil
	})
}

// CommentDelete 删除评论及其整棵回复子树
// 逐层收集回复ID再统一删除，即使数据中出现环也不会死循环
func CommentDelete(commentID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var comment CommentModel
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}

		all := []uint{commentID}
		seen := map[uint]bool{commentID: true}
		frontier := []uint{commentID}
		for len(frontier) > 0 {
			var childIDs []uint
			if err := tx.Model(&CommentModel{}).
				Where("replied_id IN ?", frontier).
				Pluck("id", &childIDs).Error; err != nil {
				return fmt.Errorf("查询回复评论失败: %w", err)
			}
			frontier = frontier[:0]
			for _, id := range childIDs {
				if seen[id] {
					continue
				}
				seen[id] = true
				all = append(all, id)
				frontier = append(frontier, id)
			}
		}

		if err := tx.Where("id IN ?", all).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("删除评论失败: %w", err)
		}
		return nil
	})
}

// PostCommentTree 获取一篇博文下已审核的评论树，根评论按时间升序
func PostCommentTree(postID uint) ([]*CommentModel, error) {
	var all []*CommentModel
	if err := global.DB.Model(&CommentModel{}).
		Where("post_id = ? AND reviewed = ?", postID, true).
		Order("created_at ASC").
		Find(&all).Error; err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}
	return buildCommentTree(all), nil
}

// buildCommentTree 将评论列表构建成树形结构
func buildCommentTree(all []*CommentModel) []*CommentModel {
	commentMap := make(map[uint]*CommentModel, len(all))
	rootComments := make([]*CommentModel, 0)

	for _, comment := range all {
		commentMap[comment.ID] = comment
	}

	for _, comment := range all {
		if comment.RepliedID == nil {
			rootComments = append(rootComments, comment)
			continue
		}
		if parent, exists := commentMap[*comment.RepliedID]; exists {
			parent.Replies = append(parent.Replies, comment)
		} else {
			// 父评论未过审时，回复提升为根评论展示
			rootComments = append(rootComments, comment)
		}
	}

	return rootComments
}

// UnreviewedCommentCount 未审核评论数，后台侧边栏角标用
func UnreviewedCommentCount() (int64, error) {
	var count int64
	err := global.DB.Model(&CommentModel{}).Where("reviewed = ?", false).Count(&count).Error
	return count, err
}
