package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestVideoListPagination(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedVideo(t, conn, user.UserId, videoSeed{
			Title:     fmt.Sprintf("video-%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	ctx := context.Background()

	videos, meta, err := NewVideoListService(ctx).VideoList(&db.VideoListParams{Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, videos, 10)
	require.EqualValues(t, 25, meta.TotalItems)
	require.EqualValues(t, 3, meta.TotalPages)
	require.EqualValues(t, 2, meta.Page)
	require.True(t, meta.HasNext)
	require.True(t, meta.HasPrev)

	// Past the end: an empty list with consistent meta, never an error.
	videos, meta, err = NewVideoListService(ctx).VideoList(&db.VideoListParams{Page: 99, PageSize: 10})
	require.NoError(t, err)
	require.Empty(t, videos)
	require.EqualValues(t, 25, meta.TotalItems)
	require.False(t, meta.HasNext)
	require.True(t, meta.HasPrev)

	// Out-of-range paging inputs clamp to the defaults.
	videos, meta, err = NewVideoListService(ctx).VideoList(&db.VideoListParams{Page: -3, PageSize: 5000})
	require.NoError(t, err)
	require.Len(t, videos, 12)
	require.EqualValues(t, 1, meta.Page)
	require.EqualValues(t, 12, meta.PageSize)
	require.False(t, meta.HasPrev)
}

func TestVideoListLatestOrder(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	old := seedVideo(t, conn, user.UserId, videoSeed{Title: "old", CreatedAt: base})
	mid := seedVideo(t, conn, user.UserId, videoSeed{Title: "mid", CreatedAt: base.Add(time.Hour)})
	newest := seedVideo(t, conn, user.UserId, videoSeed{Title: "new", CreatedAt: base.Add(2 * time.Hour)})

	videos, _, err := NewVideoListService(context.Background()).VideoList(&db.VideoListParams{})
	require.NoError(t, err)
	require.Len(t, videos, 3)
	require.Equal(t, newest.VideoId, videos[0].VideoId)
	require.Equal(t, mid.VideoId, videos[1].VideoId)
	require.Equal(t, old.VideoId, videos[2].VideoId)
}

func TestVideoListSortDeterministic(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	a := seedVideo(t, conn, user.UserId, videoSeed{Title: "a", Views: 100})
	b := seedVideo(t, conn, user.UserId, videoSeed{Title: "b", Views: 100})
	c := seedVideo(t, conn, user.UserId, videoSeed{Title: "c", Views: 50})
	ctx := context.Background()

	// Equal view counts break the tie on id, so repeated queries agree.
	for i := 0; i < 3; i++ {
		videos, _, err := NewVideoListService(ctx).VideoList(&db.VideoListParams{Sort: db.SortViews})
		require.NoError(t, err)
		require.Len(t, videos, 3)
		require.Equal(t, b.VideoId, videos[0].VideoId)
		require.Equal(t, a.VideoId, videos[1].VideoId)
		require.Equal(t, c.VideoId, videos[2].VideoId)
	}
}

func TestVideoListSortPopular(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	lowLikes := seedVideo(t, conn, user.UserId, videoSeed{Title: "a", Likes: 1, Views: 999})
	topLikes := seedVideo(t, conn, user.UserId, videoSeed{Title: "b", Likes: 5, Views: 10})
	tieBreak := seedVideo(t, conn, user.UserId, videoSeed{Title: "c", Likes: 5, Views: 20})

	videos, _, err := NewVideoListService(context.Background()).VideoList(&db.VideoListParams{Sort: db.SortPopular})
	require.NoError(t, err)
	require.Len(t, videos, 3)
	require.Equal(t, tieBreak.VideoId, videos[0].VideoId)
	require.Equal(t, topLikes.VideoId, videos[1].VideoId)
	require.Equal(t, lowLikes.VideoId, videos[2].VideoId)
}

func TestVideoListFiltersCompose(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	match := seedVideo(t, conn, alice.UserId, videoSeed{Title: "Go Concurrency Patterns", Category: "tech"})
	seedVideo(t, conn, alice.UserId, videoSeed{Title: "Go Cooking Show", Category: "food"})
	seedVideo(t, conn, bob.UserId, videoSeed{Title: "Go Concurrency Deep Dive", Category: "tech"})
	ctx := context.Background()

	videos, meta, err := NewVideoListService(ctx).VideoList(&db.VideoListParams{
		Keyword:  "concurrency",
		Category: "tech",
		UserId:   alice.UserId,
	})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.EqualValues(t, 1, meta.TotalItems)
	require.Equal(t, match.VideoId, videos[0].VideoId)

	// Keyword match is case-insensitive and covers descriptions.
	require.NoError(t, conn.Model(match).UpdateColumn("description", "About GOROUTINES").Error)
	videos, _, err = NewVideoListService(ctx).VideoList(&db.VideoListParams{Keyword: "goroutines"})
	require.NoError(t, err)
	require.Len(t, videos, 1)

	// Category "all" is a no-op filter.
	videos, _, err = NewVideoListService(ctx).VideoList(&db.VideoListParams{Category: "all"})
	require.NoError(t, err)
	require.Len(t, videos, 3)
}

func TestVideoListUnknownTag(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	seedVideo(t, conn, user.UserId, videoSeed{Title: "a"})

	videos, meta, err := NewVideoListService(context.Background()).VideoList(&db.VideoListParams{TagName: "no-such-tag"})
	require.NoError(t, err)
	require.Empty(t, videos)
	require.EqualValues(t, 0, meta.TotalItems)
}

func TestVideoListTagFilter(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	tagged := seedVideo(t, conn, user.UserId, videoSeed{Title: "tagged"})
	seedVideo(t, conn, user.UserId, videoSeed{Title: "untagged"})
	ctx := context.Background()
	require.NoError(t, NewTagSaveService(ctx).SaveVideoTags(tagged.VideoId, "golang"))

	videos, _, err := NewVideoListService(ctx).VideoList(&db.VideoListParams{TagName: "golang"})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, tagged.VideoId, videos[0].VideoId)
}

func TestCreateVideoValidation(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	ctx := context.Background()
	videoService := NewVideoListService(ctx)

	err := videoService.CreateVideo(videoOf(user.UserId, "   "))
	require.True(t, errno.Is(err, errno.ParamErr))

	err = videoService.CreateVideo(videoOf(user.UserId, strings.Repeat("x", 201)))
	require.True(t, errno.Is(err, errno.ParamErr))

	noPath := videoOf(user.UserId, "fine title")
	noPath.VideoPath = ""
	err = videoService.CreateVideo(noPath)
	require.True(t, errno.Is(err, errno.ParamErr))

	ok := videoOf(user.UserId, "fine title")
	require.NoError(t, videoService.CreateVideo(ok))
	require.NotZero(t, ok.VideoId)
}

func TestUpdateVideoOwnership(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, videoSeed{Title: "original"})
	ctx := context.Background()
	videoService := NewVideoListService(ctx)

	err := videoService.UpdateVideo(video.VideoId, bob.UserId, "hijacked", "", "")
	require.True(t, errno.Is(err, errno.AuthorizationErr))

	require.NoError(t, videoService.UpdateVideo(video.VideoId, alice.UserId, "renamed", "desc", "tech"))
	updated, err := videoService.VideoInfo(video.VideoId)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, "tech", updated.Category)
}

func TestDeleteVideoCascade(t *testing.T) {
	conn := newTestDB(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	video := seedVideo(t, conn, alice.UserId, videoSeed{Title: "doomed"})
	ctx := context.Background()
	require.NoError(t, NewTagSaveService(ctx).SaveVideoTags(video.VideoId, "golang,web"))
	videoService := NewVideoListService(ctx)

	err := videoService.DeleteVideo(video.VideoId, bob.UserId)
	require.True(t, errno.Is(err, errno.AuthorizationErr))

	require.NoError(t, videoService.DeleteVideo(video.VideoId, alice.UserId))
	_, err = videoService.VideoInfo(video.VideoId)
	require.True(t, errno.Is(err, errno.NotFoundErr))

	var linkCount int64
	require.NoError(t, conn.Table("video_tags").Where("video_id = ?", video.VideoId).Count(&linkCount).Error)
	require.Zero(t, linkCount)

	err = videoService.DeleteVideo(video.VideoId, alice.UserId)
	require.True(t, errno.Is(err, errno.NotFoundErr))
}
