package repository

import (
	"github.com/dursunaydin1/refik-app/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert inserts the (user, day) row or overwrites its page and completion
// flag. The unique index makes concurrent calls converge on one row.
func (r *ProgressRepository) Upsert(entry *models.Progress) (*models.Progress, error) {
	row := &models.Progress{
		UserID:       entry.UserID,
		Day:          entry.Day,
		LastReadPage: entry.LastReadPage,
		IsCompleted:  entry.IsCompleted,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_read_page", "is_completed", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return r.Find(entry.UserID, entry.Day)
}

func (r *ProgressRepository) Find(userID uint, day int) (*models.Progress, error) {
	var entry models.Progress
	if err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns the user's entries, most recent day first.
func (r *ProgressRepository) ListByUser(userID uint, window *Window) ([]models.Progress, error) {
	var entries []models.Progress
	err := withinWindow(r.db.Where("user_id = ?", userID), window).
		Order("day DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ProgressRepository) CountCompleted(userID uint, window *Window) (int64, error) {
	var count int64
	err := withinWindow(r.db.Model(&models.Progress{}).Where("user_id = ? AND is_completed = ?", userID, true), window).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountCompletedByUsers(userIDs []uint, window *Window) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		UserID uint
		Total  int64
	}
	err := withinWindow(r.db.Model(&models.Progress{}).
		Select("user_id, COUNT(*) AS total").
		Where("user_id IN ? AND is_completed = ?", userIDs, true), window).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.UserID] = row.Total
	}
	return counts, nil
}

// UserIDsWithIncompleteDay lists users holding an unfinished entry for day.
func (r *ProgressRepository) UserIDsWithIncompleteDay(day int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Progress{}).
		Where("day = ? AND is_completed = ?", day, false).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func withinWindow(q *gorm.DB, window *Window) *gorm.DB {
	if window == nil {
		return q
	}
	return q.Where("updated_at BETWEEN ? AND ?", window.From.UTC(), window.To.UTC())
}
