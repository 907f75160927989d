package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

type AccountStatus string

const (
	StatusPending AccountStatus = "PENDING"
	StatusActive  AccountStatus = "ACTIVE"
)

// PlaceholderName is given to accounts created without a display name.
const PlaceholderName = "İsimsiz"

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string        `gorm:"size:80" json:"name"`
	PhoneNumber  string        `gorm:"uniqueIndex;not null" json:"phone_number"`
	PasswordHash string        `json:"-"`
	Role         Role          `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Status       AccountStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	// ActivationToken is set while the account is PENDING and cleared on use.
	ActivationToken *string    `gorm:"uniqueIndex" json:"-"`
	TokenExpires    *time.Time `json:"-"`

	GroupID *uint `gorm:"index" json:"group_id"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phoneNumber"`
	Role        Role          `json:"role"`
	Status      AccountStatus `json:"status"`
	GroupID     *uint         `json:"groupId"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Status:      u.Status,
		GroupID:     u.GroupID,
	}
}

// MemberResponse is the shape returned by group member listings.
type MemberResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}

func (u *User) ToMemberResponse() MemberResponse {
	return MemberResponse{
		ID:          u.ID,
		Name:        u.Name,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
	}
}
