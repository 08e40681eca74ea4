package service

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
)

// AdminListService backs the moderation screens: keyword-searchable,
// paginated listings of users, videos and comments.
type AdminListService struct {
	ctx context.Context
}

func NewAdminListService(ctx context.Context) *AdminListService {
	return &AdminListService{ctx: ctx}
}

func clampAdminPage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

func (service *AdminListService) Users(keyword string, page int64) ([]*model.User, *PageMeta, error) {
	page = clampAdminPage(page)
	users, count, err := db.SearchUsers(service.ctx, keyword, page, constants.AdminPageSize)
	if err != nil {
		return nil, nil, err
	}
	return users, BuildPageMeta(count, page, constants.AdminPageSize), nil
}

func (service *AdminListService) Videos(keyword string, page int64) ([]*model.Video, *PageMeta, error) {
	page = clampAdminPage(page)
	videos, count, err := db.SearchVideos(service.ctx, keyword, page, constants.AdminPageSize)
	if err != nil {
		return nil, nil, err
	}
	return videos, BuildPageMeta(count, page, constants.AdminPageSize), nil
}

// DeleteUser is the privileged account-removal path with full cascade.
func (service *AdminListService) DeleteUser(userId int64) error {
	return db.DeleteUser(service.ctx, userId)
}

func (service *AdminListService) Comments(keyword string, page int64) ([]*model.Comment, *PageMeta, error) {
	page = clampAdminPage(page)
	comments, count, err := db.SearchComments(service.ctx, keyword, page, constants.AdminPageSize)
	if err != nil {
		return nil, nil, err
	}
	return comments, BuildPageMeta(count, page, constants.AdminPageSize), nil
}
