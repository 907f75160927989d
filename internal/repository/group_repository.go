package repository

import (
	"github.com/dursunaydin1/refik-app/internal/models"
	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

func (r *GroupRepository) FindByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindFirst returns the oldest group, which is the default group.
func (r *GroupRepository) FindFirst() (*models.Group, error) {
	var group models.Group
	if err := r.db.Order("id ASC").First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) Rename(id uint, name string) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Update("name", name).Error
}
