package model

import "time"

// Video rows keep denormalized views/likes counters. Likes is always the
// recomputed cardinality of the video_likes join table, never a bare increment.
type Video struct {
	VideoId       int64     `json:"video_id" gorm:"column:video_id;primaryKey;autoIncrement"`
	UserId        int64     `json:"user_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"size:200;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Category      string    `json:"category" gorm:"size:50;index"`
	VideoPath     string    `json:"video_path" gorm:"size:500;not null"`
	ThumbnailPath string    `json:"thumbnail_path" gorm:"size:500"`
	Duration      int64     `json:"duration"`
	Views         int64     `json:"views" gorm:"not null;default:0"`
	Likes         int64     `json:"likes" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Tags []Tag `json:"tags,omitempty" gorm:"-"`
}

func (Video) TableName() string { return "videos" }
