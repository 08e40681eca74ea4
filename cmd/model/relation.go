package model

import "time"

// Subscription: SubscriberId follows the channel SubscribedToId. The schema
// does not reject self-subscription, the relation service does.
type Subscription struct {
	SubscriberId   int64     `json:"subscriber_id" gorm:"primaryKey;autoIncrement:false"`
	SubscribedToId int64     `json:"subscribed_to_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`

	Subscriber *User `json:"-" gorm:"foreignKey:SubscriberId;constraint:OnDelete:CASCADE"`
	Channel    *User `json:"-" gorm:"foreignKey:SubscribedToId;constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string { return "subscriptions" }
