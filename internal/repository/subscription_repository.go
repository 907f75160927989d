package repository

import (
	"github.com/dursunaydin1/refik-app/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Upsert stores the subscription, refreshing the keys when (user, endpoint)
// already exists.
func (r *SubscriptionRepository) Upsert(sub *models.PushSubscription) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "updated_at"}),
	}).Create(sub).Error
}

func (r *SubscriptionRepository) ListByUser(userID uint) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) ListByUsers(userIDs []uint) ([]models.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []models.PushSubscription{}, nil
	}
	var subs []models.PushSubscription
	err := r.db.Where("user_id IN ?", userIDs).Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) ListAll() ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.PushSubscription{}, id).Error
}

func (r *SubscriptionRepository) DeleteByEndpoint(userID uint, endpoint string) error {
	return r.db.Where("user_id = ? AND endpoint = ?", userID, endpoint).Delete(&models.PushSubscription{}).Error
}
