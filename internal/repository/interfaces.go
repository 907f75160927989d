package repository

import (
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
)

// Window bounds progress queries by last-update time, both ends inclusive.
// A nil *Window means no bound.
type Window struct {
	From time.Time
	To   time.Time
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	FindByPhoneContaining(fragment string) (*models.User, error)
	FindByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	SetGroup(userID uint, groupID *uint) error
	ListByGroup(groupID uint) ([]models.User, error)
}

// GroupRepositoryInterface defines the contract for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	FindByID(id uint) (*models.Group, error)
	FindFirst() (*models.Group, error)
	Rename(id uint, name string) error
}

// ProgressRepositoryInterface defines the contract for reading progress operations
type ProgressRepositoryInterface interface {
	Upsert(entry *models.Progress) (*models.Progress, error)
	Find(userID uint, day int) (*models.Progress, error)
	ListByUser(userID uint, window *Window) ([]models.Progress, error)
	CountCompleted(userID uint, window *Window) (int64, error)
	CountCompletedByUsers(userIDs []uint, window *Window) (map[uint]int64, error)
	UserIDsWithIncompleteDay(day int) ([]uint, error)
}

// SubscriptionRepositoryInterface defines the contract for push subscription operations
type SubscriptionRepositoryInterface interface {
	Upsert(sub *models.PushSubscription) error
	ListByUser(userID uint) ([]models.PushSubscription, error)
	ListByUsers(userIDs []uint) ([]models.PushSubscription, error)
	ListAll() ([]models.PushSubscription, error)
	Delete(id uint) error
	DeleteByEndpoint(userID uint, endpoint string) error
}
