package service

import (
	"context"
	"strings"
	"testing"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentValidation(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	video := seedVideo(t, conn, alice.UserId, "clip")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	_, err := commentService.CreateComment(video.VideoId, alice.UserId, "   ")
	require.True(t, errno.Is(err, errno.ParamErr))

	_, err = commentService.CreateComment(video.VideoId, alice.UserId, strings.Repeat("x", 501))
	require.True(t, errno.Is(err, errno.ParamErr))

	_, err = commentService.CreateComment(404, alice.UserId, "hello")
	require.True(t, errno.Is(err, errno.NotFoundErr))

	comment, err := commentService.CreateComment(video.VideoId, alice.UserId, "  hello  ")
	require.NoError(t, err)
	require.Equal(t, "hello", comment.Content)
	require.Nil(t, comment.ParentId)
}

func TestReplyInheritsVideo(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, "clip")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	parent, err := commentService.CreateComment(video.VideoId, alice.UserId, "first")
	require.NoError(t, err)

	reply, err := commentService.ReplyComment(parent.CommentId, bob.UserId, "second")
	require.NoError(t, err)
	require.Equal(t, video.VideoId, reply.VideoId)
	require.NotNil(t, reply.ParentId)
	require.Equal(t, parent.CommentId, *reply.ParentId)

	_, err = commentService.ReplyComment(404, bob.UserId, "orphan")
	require.True(t, errno.Is(err, errno.NotFoundErr))
}

func TestListCommentsTree(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, "clip")
	other := seedVideo(t, conn, alice.UserId, "other")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	first, err := commentService.CreateComment(video.VideoId, alice.UserId, "first")
	require.NoError(t, err)
	second, err := commentService.CreateComment(video.VideoId, bob.UserId, "second")
	require.NoError(t, err)
	reply, err := commentService.ReplyComment(first.CommentId, bob.UserId, "reply")
	require.NoError(t, err)
	nested, err := commentService.ReplyComment(reply.CommentId, alice.UserId, "nested")
	require.NoError(t, err)
	_, err = commentService.CreateComment(other.VideoId, alice.UserId, "elsewhere")
	require.NoError(t, err)

	roots, total, err := commentService.ListComments(video.VideoId)
	require.NoError(t, err)

	// Top-level comments in creation order, replies grouped at any depth.
	require.Len(t, roots, 2)
	require.Equal(t, first.CommentId, roots[0].CommentId)
	require.Equal(t, second.CommentId, roots[1].CommentId)
	require.Len(t, roots[0].Replies, 1)
	require.Equal(t, reply.CommentId, roots[0].Replies[0].CommentId)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	require.Equal(t, nested.CommentId, roots[0].Replies[0].Replies[0].CommentId)
	require.Empty(t, roots[1].Replies)

	// Total counts top-level comments plus their direct replies.
	require.EqualValues(t, 3, total)

	// The flat count sees every row regardless of depth.
	flat, err := commentService.CommentCount(video.VideoId)
	require.NoError(t, err)
	require.EqualValues(t, 4, flat)

	_, _, err = commentService.ListComments(404)
	require.True(t, errno.Is(err, errno.NotFoundErr))
}

func TestEditCommentOwnership(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, "clip")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	comment, err := commentService.CreateComment(video.VideoId, alice.UserId, "original")
	require.NoError(t, err)

	err = commentService.EditComment(comment.CommentId, bob.UserId, "hijacked")
	require.True(t, errno.Is(err, errno.AuthorizationErr))

	require.NoError(t, commentService.EditComment(comment.CommentId, alice.UserId, "edited"))
	var stored model.Comment
	require.NoError(t, conn.First(&stored, "comment_id = ?", comment.CommentId).Error)
	require.Equal(t, "edited", stored.Content)
}

func TestDeleteCommentTakesSubtree(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, "clip")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	doomed, err := commentService.CreateComment(video.VideoId, alice.UserId, "doomed")
	require.NoError(t, err)
	reply, err := commentService.ReplyComment(doomed.CommentId, bob.UserId, "reply")
	require.NoError(t, err)
	_, err = commentService.ReplyComment(reply.CommentId, alice.UserId, "nested")
	require.NoError(t, err)
	keeper, err := commentService.CreateComment(video.VideoId, bob.UserId, "keeper")
	require.NoError(t, err)

	err = commentService.DeleteComment(doomed.CommentId, bob.UserId)
	require.True(t, errno.Is(err, errno.AuthorizationErr))

	require.NoError(t, commentService.DeleteComment(doomed.CommentId, alice.UserId))

	var count int64
	require.NoError(t, conn.Model(&model.Comment{}).Where("video_id = ?", video.VideoId).Count(&count).Error)
	require.EqualValues(t, 1, count)

	roots, total, err := commentService.ListComments(video.VideoId)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, keeper.CommentId, roots[0].CommentId)
	require.EqualValues(t, 1, total)
}

func TestAdminDeleteCommentSkipsOwnership(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	video := seedVideo(t, conn, alice.UserId, "clip")
	ctx := context.Background()
	commentService := NewCommentService(ctx)

	comment, err := commentService.CreateComment(video.VideoId, alice.UserId, "spam")
	require.NoError(t, err)

	require.NoError(t, commentService.AdminDeleteComment(comment.CommentId))

	err = commentService.AdminDeleteComment(comment.CommentId)
	require.True(t, errno.Is(err, errno.NotFoundErr))
}
