package repository

import (
	"github.com/dursunaydin1/refik-app/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhoneContaining matches stored numbers that contain fragment. Several
// accounts can match; the oldest one wins.
func (r *UserRepository) FindByPhoneContaining(fragment string) (*models.User, error) {
	var user models.User
	err := r.db.Where("phone_number LIKE ?", "%"+fragment+"%").
		Order("id ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByActivationToken(token string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("activation_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) SetGroup(userID uint, groupID *uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("group_id", groupID).Error
}

func (r *UserRepository) ListByGroup(groupID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
