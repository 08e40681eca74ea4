package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	db.DB = conn
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, conn.Create(user).Error)
	return user
}

func videoOf(userId int64, title string) *model.Video {
	return &model.Video{UserId: userId, Title: title, VideoPath: "videos/clip.mp4"}
}

type videoSeed struct {
	Title     string
	Category  string
	Views     int64
	Likes     int64
	CreatedAt time.Time
}

func seedVideo(t *testing.T, conn *gorm.DB, userId int64, seed videoSeed) *model.Video {
	t.Helper()
	video := &model.Video{
		UserId:    userId,
		Title:     seed.Title,
		Category:  seed.Category,
		VideoPath: "videos/" + seed.Title + ".mp4",
		Views:     seed.Views,
		Likes:     seed.Likes,
	}
	require.NoError(t, conn.Create(video).Error)
	if !seed.CreatedAt.IsZero() {
		require.NoError(t, conn.Model(video).UpdateColumn("created_at", seed.CreatedAt).Error)
		video.CreatedAt = seed.CreatedAt
	}
	return video
}
