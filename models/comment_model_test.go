package models

import (
	"testing"

	"bluelog/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCommentClosed(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	require.NoError(t, post.ToggleComment())

	_, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "hi"})
	require.ErrorIs(t, err, ErrCommentClosed)

	var count int64
	require.NoError(t, global.DB.Model(&CommentModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitCommentReviewedFlag(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)

	visitor, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "visitor"})
	require.NoError(t, err)
	assert.False(t, visitor.Reviewed)
	assert.False(t, visitor.FromAdmin)

	admin, err := post.SubmitComment(CommentSubmitParams{Author: "Admin", Body: "admin", FromAdmin: true})
	require.NoError(t, err)
	assert.True(t, admin.Reviewed)
	assert.True(t, admin.FromAdmin)
}

func TestSubmitCommentReplyMustMatchPost(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	other := mustCreatePost(t, "other", DefaultCategoryID)

	comment, err := other.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "on other"})
	require.NoError(t, err)

	// 回复目标属于另一篇博文
	_, err = post.SubmitComment(CommentSubmitParams{
		Author: "b", Email: "b@b.c", Body: "reply", RepliedID: &comment.ID,
	})
	require.ErrorIs(t, err, ErrRepliedNotFound)

	missing := uint(9999)
	_, err = post.SubmitComment(CommentSubmitParams{
		Author: "b", Email: "b@b.c", Body: "reply", RepliedID: &missing,
	})
	require.ErrorIs(t, err, ErrRepliedNotFound)
}

func TestSubmitCommentSanitizesBody(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	comment, err := post.SubmitComment(CommentSubmitParams{
		Author: "a", Email: "a@b.c",
		Body: `hi<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, comment.Body, "<script>")
	assert.Contains(t, comment.Body, "hi")
}

func TestCommentDeleteSubtree(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)

	root, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "root"})
	require.NoError(t, err)
	reply, err := post.SubmitComment(CommentSubmitParams{Author: "b", Email: "b@b.c", Body: "reply", RepliedID: &root.ID})
	require.NoError(t, err)
	_, err = post.SubmitComment(CommentSubmitParams{Author: "c", Email: "c@b.c", Body: "deep", RepliedID: &reply.ID})
	require.NoError(t, err)
	other, err := post.SubmitComment(CommentSubmitParams{Author: "d", Email: "d@b.c", Body: "unrelated"})
	require.NoError(t, err)

	require.NoError(t, CommentDelete(root.ID))

	var count int64
	require.NoError(t, global.DB.Model(&CommentModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var reloaded CommentModel
	require.NoError(t, global.DB.First(&reloaded, other.ID).Error)
}

func TestCommentApprove(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)
	comment, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)

	count, err := UnreviewedCommentCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, CommentApprove(comment.ID))

	count, err = UnreviewedCommentCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostCommentTree(t *testing.T) {
	setupTestDB(t)

	post := mustCreatePost(t, "hello", DefaultCategoryID)

	root, err := post.SubmitComment(CommentSubmitParams{Author: "a", Email: "a@b.c", Body: "root"})
	require.NoError(t, err)
	require.NoError(t, CommentApprove(root.ID))

	reply, err := post.SubmitComment(CommentSubmitParams{Author: "b", Email: "b@b.c", Body: "reply", RepliedID: &root.ID})
	require.NoError(t, err)
	require.NoError(t, CommentApprove(reply.ID))

	// 未审核的评论及其下已审核的回复
	hidden, err := post.SubmitComment(CommentSubmitParams{Author: "c", Email: "c@b.c", Body: "pending"})
	require.NoError(t, err)
	orphan, err := post.SubmitComment(CommentSubmitParams{Author: "d", Email: "d@b.c", Body: "orphan", RepliedID: &hidden.ID})
	require.NoError(t, err)
	require.NoError(t, CommentApprove(orphan.ID))

	tree, err := PostCommentTree(post.ID)
	require.NoError(t, err)

	// root和提升为根的orphan，pending不展示
	require.Len(t, tree, 2)
	ids := []uint{tree[0].ID, tree[1].ID}
	assert.Contains(t, ids, root.ID)
	assert.Contains(t, ids, orphan.ID)

	for _, node := range tree {
		if node.ID == root.ID {
			require.Len(t, node.Replies, 1)
			assert.Equal(t, reply.ID, node.Replies[0].ID)
		}
	}
}
