package redis

import (
	"context"
	"fmt"
	"time"

	"WeTube.com/config"
	"WeTube.com/pkg/constants"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func Init() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
}

// IncrCommentRate bumps the per-user comment counter for the current window
// and returns its value. Without a configured client it reports zero, which
// callers treat as "allow".
func IncrCommentRate(ctx context.Context, userId int64) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("comment_rate_limit:%d", userId)
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		rdb.Expire(ctx, key, constants.CommentRateLimitWindow*time.Second)
	}
	return count, nil
}
