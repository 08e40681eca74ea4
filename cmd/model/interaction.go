package model

import "time"

// VideoLike is the source of truth for the like state: a row exists exactly
// while the user currently likes the video.
type VideoLike struct {
	VideoId   int64     `json:"video_id" gorm:"primaryKey;autoIncrement:false"`
	UserId    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Video *Video `json:"-" gorm:"foreignKey:VideoId;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (VideoLike) TableName() string { return "video_likes" }
