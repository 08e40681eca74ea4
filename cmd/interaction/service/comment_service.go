package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"WeTube.com/cmd/interaction/dal/db"
	"WeTube.com/cmd/interaction/infras/redis"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CommentNode is one rendered comment with its replies grouped under it.
type CommentNode struct {
	*model.Comment
	Replies []*CommentNode `json:"replies"`
}

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.ParamErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return "", errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return content, nil
}

// checkRateLimit consults redis when configured; a broken redis never blocks
// the user.
func (service *CommentService) checkRateLimit(userId int64) error {
	count, err := redis.IncrCommentRate(service.ctx, userId)
	if err != nil {
		hlog.Warnf("Failed to check comment rate limit for user %d: %v", userId, err)
		return nil
	}
	if count > constants.CommentRateLimit {
		return errno.ParamErr.WithMessage("Too many comments, please slow down")
	}
	return nil
}

// CreateComment inserts a top-level comment on the video.
func (service *CommentService) CreateComment(videoId, userId int64, content string) (*model.Comment, error) {
	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	if _, err := db.GetVideoInfo(service.ctx, videoId); err != nil {
		return nil, err
	}
	if err := service.checkRateLimit(userId); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		VideoId: videoId,
		UserId:  userId,
		Content: content,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyComment inserts a reply; the video is inherited from the parent.
func (service *CommentService) ReplyComment(parentId, userId int64, content string) (*model.Comment, error) {
	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	parent, err := db.GetCommentInfo(service.ctx, parentId)
	if err != nil {
		return nil, err
	}
	if err := service.checkRateLimit(userId); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		VideoId:  parent.VideoId,
		UserId:   userId,
		ParentId: &parent.CommentId,
		Content:  content,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// EditComment rewrites the content; only the owner may edit.
func (service *CommentService) EditComment(commentId, userId int64, content string) error {
	content, err := validateCommentContent(content)
	if err != nil {
		return err
	}
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		return err
	}
	if comment.UserId != userId {
		return errno.AuthorizationErr.WithMessage("Only the owner can edit this comment")
	}
	return db.UpdateCommentContent(service.ctx, commentId, content)
}

// DeleteComment removes an owned comment and its reply chain.
func (service *CommentService) DeleteComment(commentId, userId int64) error {
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		return err
	}
	if comment.UserId != userId {
		return errno.AuthorizationErr.WithMessage("Only the owner can delete this comment")
	}
	return db.DeleteCommentTree(service.ctx, commentId)
}

// AdminDeleteComment is the privileged moderation path, no ownership check.
func (service *CommentService) AdminDeleteComment(commentId int64) error {
	if _, err := db.GetCommentInfo(service.ctx, commentId); err != nil {
		return err
	}
	return db.DeleteCommentTree(service.ctx, commentId)
}

// CommentCount is the flat row count for the video, used on listing cards.
func (service *CommentService) CommentCount(videoId int64) (int64, error) {
	return db.GetVideoCommentCount(service.ctx, videoId)
}

// ListComments assembles the comment tree for a video: top-level comments in
// creation order, replies grouped under their parents, any depth. The total
// counts each top-level comment plus its direct replies, computed on demand.
func (service *CommentService) ListComments(videoId int64) ([]*CommentNode, int64, error) {
	if _, err := db.GetVideoInfo(service.ctx, videoId); err != nil {
		return nil, 0, err
	}
	rows, err := db.GetCommentsByVideo(service.ctx, videoId)
	if err != nil {
		return nil, 0, err
	}

	nodes := make(map[int64]*CommentNode, len(rows))
	roots := make([]*CommentNode, 0)
	for _, row := range rows {
		node := &CommentNode{Comment: row, Replies: make([]*CommentNode, 0)}
		nodes[row.CommentId] = node
		if row.ParentId == nil {
			roots = append(roots, node)
			continue
		}
		// Rows come back oldest first, so a parent is always seen before
		// its replies.
		if parent, ok := nodes[*row.ParentId]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}

	var total int64
	for _, root := range roots {
		total += 1 + int64(len(root.Replies))
	}
	return roots, total, nil
}
