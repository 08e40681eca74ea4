package service

import (
	"context"
	"strings"
	"testing"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagNames(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain", "golang,web", []string{"golang", "web"}},
		{"whitespace", "  golang ,  web  ", []string{"golang", "web"}},
		{"empties dropped", ",golang,,web,", []string{"golang", "web"}},
		{"duplicates keep first-seen order", "web,golang,web,golang", []string{"web", "golang"}},
		{"blank input", "   ,  , ", []string{}},
		{"over-length dropped silently", "golang," + strings.Repeat("x", 51) + ",web", []string{"golang", "web"}},
		{"exactly max length kept", strings.Repeat("y", 50), []string{strings.Repeat("y", 50)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeTagNames(tc.raw))
		})
	}
}

func TestSaveVideoTagsReplace(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	video := seedVideo(t, conn, user.UserId, videoSeed{Title: "clip"})
	ctx := context.Background()
	tagService := NewTagSaveService(ctx)

	require.NoError(t, tagService.SaveVideoTags(video.VideoId, "golang, web"))
	tags, err := tagService.VideoTags(video.VideoId)
	require.NoError(t, err)
	require.Equal(t, []string{"golang", "web"}, tagNames(tags))

	// Replacement swaps the whole set; existing tag rows are reused.
	require.NoError(t, tagService.SaveVideoTags(video.VideoId, "web, music"))
	tags, err = tagService.VideoTags(video.VideoId)
	require.NoError(t, err)
	require.Equal(t, []string{"web", "music"}, tagNames(tags))

	var tagCount int64
	require.NoError(t, conn.Model(&model.Tag{}).Count(&tagCount).Error)
	require.EqualValues(t, 3, tagCount)

	// Blank input clears every link.
	require.NoError(t, tagService.SaveVideoTags(video.VideoId, "  "))
	tags, err = tagService.VideoTags(video.VideoId)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestSaveVideoTagsMissingVideo(t *testing.T) {
	newTestDB(t)
	err := NewTagSaveService(context.Background()).SaveVideoTags(404, "golang")
	require.True(t, errno.Is(err, errno.NotFoundErr))
}

func TestAttachTags(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	first := seedVideo(t, conn, user.UserId, videoSeed{Title: "first"})
	second := seedVideo(t, conn, user.UserId, videoSeed{Title: "second"})
	bare := seedVideo(t, conn, user.UserId, videoSeed{Title: "bare"})
	ctx := context.Background()
	tagService := NewTagSaveService(ctx)
	require.NoError(t, tagService.SaveVideoTags(first.VideoId, "golang,web"))
	require.NoError(t, tagService.SaveVideoTags(second.VideoId, "music"))

	videos := []*model.Video{first, second, bare}
	require.NoError(t, tagService.AttachTags(videos))
	require.Equal(t, []string{"golang", "web"}, tagNames(first.Tags))
	require.Equal(t, []string{"music"}, tagNames(second.Tags))
	require.Empty(t, bare.Tags)
}

func TestPopularTags(t *testing.T) {
	conn := newTestDB(t)
	user := seedUser(t, conn, "alice")
	ctx := context.Background()
	tagService := NewTagSaveService(ctx)
	for i, raw := range []string{"golang,web,music", "golang,web", "golang"} {
		video := seedVideo(t, conn, user.UserId, videoSeed{Title: string(rune('a' + i))})
		require.NoError(t, tagService.SaveVideoTags(video.VideoId, raw))
	}

	tags, err := tagService.PopularTags(2)
	require.NoError(t, err)
	require.Equal(t, []string{"golang", "web"}, tagNames(tags))

	// Out-of-range limits fall back to the default.
	tags, err = tagService.PopularTags(0)
	require.NoError(t, err)
	require.Equal(t, []string{"golang", "web", "music"}, tagNames(tags))
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
