package model

import "time"

// Comment rows are a flat arena: ParentId == nil marks a top-level comment,
// anything else chains to another comment on the same video. The tree is
// assembled at query time, never held as a live pointer graph.
type Comment struct {
	CommentId int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	UserId    int64     `json:"user_id" gorm:"not null;index"`
	VideoId   int64     `json:"video_id" gorm:"not null;index"`
	ParentId  *int64    `json:"parent_id" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Likes     int64     `json:"likes" gorm:"not null;default:0"`
	Dislikes  int64     `json:"dislikes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User   *User    `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Video  *Video   `json:"-" gorm:"foreignKey:VideoId;constraint:OnDelete:CASCADE"`
	Parent *Comment `json:"-" gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }
