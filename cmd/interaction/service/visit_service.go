package service

import (
	"context"

	"WeTube.com/cmd/interaction/dal/db"
)

type VisitService struct {
	ctx context.Context
}

func NewVisitService(ctx context.Context) *VisitService {
	return &VisitService{ctx: ctx}
}

// RecordView counts one view. Repeat views by the same viewer all count;
// there is deliberately no dedup here.
func (service *VisitService) RecordView(videoId int64) error {
	return db.IncrementVideoViews(service.ctx, videoId)
}
