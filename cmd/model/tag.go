package model

import "time"

type Tag struct {
	TagId     int64     `json:"tag_id" gorm:"column:tag_id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Tag) TableName() string { return "tags" }

// VideoTag is the videos<->tags join table, kept explicit so tag replacement
// and tag-scoped listing stay plain queries.
type VideoTag struct {
	VideoId   int64     `json:"video_id" gorm:"primaryKey;autoIncrement:false"`
	TagId     int64     `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Video *Video `json:"-" gorm:"foreignKey:VideoId;constraint:OnDelete:CASCADE"`
	Tag   *Tag   `json:"-" gorm:"foreignKey:TagId;constraint:OnDelete:CASCADE"`
}

func (VideoTag) TableName() string { return "video_tags" }
