package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageSize = 12
	MaxPageSize     = 100
	AdminPageSize   = 15

	MaxTitleLength   = 200
	MaxTagNameLength = 50
	MaxCommentLength = 500

	DefaultRecommendLimit = 5
	DefaultPopularTags    = 10
	MaxPopularTags        = 50

	// Max comments per minute per user, checked against redis when configured.
	CommentRateLimit       = 10
	CommentRateLimitWindow = 60
)
