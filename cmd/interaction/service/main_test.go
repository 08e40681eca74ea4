package service

import (
	"fmt"
	"strings"
	"testing"

	catalogdb "WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/interaction/dal/db"
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
	require.NoError(t, catalogdb.Migrate(conn))
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

func seedVideo(t *testing.T, conn *gorm.DB, userId int64, title string) *model.Video {
	t.Helper()
	video := &model.Video{
		UserId:    userId,
		Title:     title,
		VideoPath: "videos/" + title + ".mp4",
	}
	require.NoError(t, conn.Create(video).Error)
	return video
}
