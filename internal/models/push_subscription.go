package models

import (
	"time"
)

type PushSubscription struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_push_user_endpoint" json:"user_id"`
	Endpoint string `gorm:"size:1024;not null;uniqueIndex:idx_push_user_endpoint" json:"endpoint"`
	P256dh   string `gorm:"not null" json:"-"`
	Auth     string `gorm:"not null" json:"-"`
}
