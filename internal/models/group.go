package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DefaultGroupName       = "Refik Grubu"
	DefaultGroupInviteCode = "REFIK2026"
)

type Group struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `gorm:"size:100;not null" json:"name"`
	InviteCode string `gorm:"size:32;uniqueIndex;not null" json:"invite_code"`
	AdminID    uint   `gorm:"not null;index" json:"admin_id"`
}
