package models

import (
	"time"
)

// Progress is one user's reading record for one campaign day.
// (user_id, day) is unique; writes go through an upsert.
type Progress struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_progress_user_day" json:"user_id"`
	Day          int       `gorm:"not null;uniqueIndex:idx_progress_user_day" json:"day"`
	LastReadPage int       `gorm:"not null" json:"last_read_page"`
	IsCompleted  bool      `gorm:"not null;index" json:"is_completed"`
}

func (Progress) TableName() string {
	return "progress"
}

type ProgressResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	Day          int       `json:"day"`
	LastReadPage int       `json:"lastReadPage"`
	IsCompleted  bool      `json:"isCompleted"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (p *Progress) ToResponse() ProgressResponse {
	return ProgressResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Day:          p.Day,
		LastReadPage: p.LastReadPage,
		IsCompleted:  p.IsCompleted,
		UpdatedAt:    p.UpdatedAt,
	}
}
