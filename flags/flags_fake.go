package flags

import (
	"fmt"

	"bluelog/global"
	"bluelog/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fake 生成测试数据：分类、博文、访客评论、管理员回复、链接
func Fake(c *cli.Context) error {
	categoryCount := c.Int("category")
	postCount := c.Int("post")
	commentCount := c.Int("comment")
	linkCount := c.Int("link")

	admin, err := models.SoleAdmin()
	if err != nil {
		return fmt.Errorf("请先执行 init 命令创建管理员: %w", err)
	}

	categoryIDs, err := fakeCategories(categoryCount)
	if err != nil {
		return err
	}

	var g errgroup.Group
	var postIDs []uint
	g.Go(func() error {
		ids, err := fakePosts(postCount, categoryIDs)
		postIDs = ids
		return err
	})
	g.Go(func() error {
		return fakeLinks(linkCount)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := fakeComments(commentCount, postIDs, admin.Name); err != nil {
		return err
	}

	global.Log.Infof("测试数据生成完成,分类:%d,博文:%d,评论:%d,链接:%d",
		categoryCount, postCount, commentCount, linkCount)
	return nil
}

func fakeCategories(count int) ([]uint, error) {
	if err := models.EnsureDefaultCategory(); err != nil {
		return nil, err
	}
	ids := []uint{models.DefaultCategoryID}
	for i := 0; i < count; i++ {
		category := models.CategoryModel{Name: fmt.Sprintf("%s-%d", gofakeit.Word(), i)}
		if err := category.Create(); err != nil {
			global.Log.Error("生成分类失败", zap.String("error", err.Error()))
			continue
		}
		ids = append(ids, category.ID)
	}
	return ids, nil
}

func fakePosts(count int, categoryIDs []uint) ([]uint, error) {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		title := gofakeit.Sentence(4)
		if len(title) > 60 {
			title = title[:60]
		}
		post := models.PostModel{
			Title:      title,
			Body:       gofakeit.Paragraph(3, 5, 12, "\n\n"),
			CanComment: true,
			CategoryID: categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)],
		}
		if err := post.Create(); err != nil {
			return nil, fmt.Errorf("生成博文失败: %w", err)
		}
		ids = append(ids, post.ID)
	}
	return ids, nil
}

func fakeComments(count int, postIDs []uint, adminName string) error {
	if len(postIDs) == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		post, err := models.PostGet(postIDs[gofakeit.Number(0, len(postIDs)-1)])
		if err != nil {
			return fmt.Errorf("生成评论失败: %w", err)
		}

		params := models.CommentSubmitParams{
			Author: gofakeit.Name(),
			Email:  gofakeit.Email(),
			Site:   gofakeit.URL(),
			Body:   gofakeit.Sentence(12),
		}
		comment, err := post.SubmitComment(params)
		if err != nil {
			return fmt.Errorf("生成评论失败: %w", err)
		}

		// 一半访客评论直接过审，四分之一再附带一条管理员回复
		if gofakeit.Bool() {
			if err := models.CommentApprove(comment.ID); err != nil {
				return fmt.Errorf("审核评论失败: %w", err)
			}
			if gofakeit.Bool() {
				repliedID := comment.ID
				_, err := post.SubmitComment(models.CommentSubmitParams{
					Author:    adminName,
					Body:      gofakeit.Sentence(8),
					RepliedID: &repliedID,
					FromAdmin: true,
				})
				if err != nil {
					return fmt.Errorf("生成管理员回复失败: %w", err)
				}
			}
		}
	}
	return nil
}

func fakeLinks(count int) error {
	for i := 0; i < count; i++ {
		link := models.LinkModel{
			Name: gofakeit.Word(),
			URL:  gofakeit.URL(),
		}
		if err := link.Create(); err != nil {
			return fmt.Errorf("生成链接失败: %w", err)
		}
	}
	return nil
}
