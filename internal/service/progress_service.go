package service

import (
	"errors"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"gorm.io/gorm"
)

type ProgressService struct {
	progressRepo repository.ProgressRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	calendar     calendar.Calendar
	now          func() time.Time
}

func NewProgressService(
	progressRepo repository.ProgressRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	cal calendar.Calendar,
) *ProgressService {
	return &ProgressService{progressRepo: progressRepo, userRepo: userRepo, calendar: cal, now: time.Now}
}

type RecordProgressInput struct {
	Day          int   `json:"day"`
	LastReadPage int   `json:"lastReadPage"`
	IsCompleted  *bool `json:"isCompleted"`
}

type RecordResult struct {
	Progress       *models.Progress
	HatimCompleted bool
}

// RecordProgress upserts the (user, day) entry. HatimCompleted reports that
// the user's overall completed count has reached every unit.
func (s *ProgressService) RecordProgress(userID uint, input RecordProgressInput) (*RecordResult, error) {
	if err := guardDay(s.calendar, s.now(), input.Day); err != nil {
		return nil, err
	}
	if input.LastReadPage < 0 {
		return nil, ErrInvalidPage
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	completed := true
	if input.IsCompleted != nil {
		completed = *input.IsCompleted
	}
	entry, err := s.progressRepo.Upsert(&models.Progress{
		UserID:       userID,
		Day:          input.Day,
		LastReadPage: input.LastReadPage,
		IsCompleted:  completed,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.progressRepo.CountCompleted(userID, nil)
	if err != nil {
		return nil, err
	}
	return &RecordResult{Progress: entry, HatimCompleted: total >= calendar.TotalUnits}, nil
}

// GetProgress returns the entry for day, or nil when none was recorded.
func (s *ProgressService) GetProgress(userID uint, day int) (*models.Progress, error) {
	if day < 1 || day > calendar.TotalUnits {
		return nil, ErrInvalidDay
	}
	entry, err := s.progressRepo.Find(userID, day)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return entry, err
}

func (s *ProgressService) CountCompleted(userID uint) (int64, error) {
	return s.progressRepo.CountCompleted(userID, nil)
}

// guardDay rejects reads and writes for days the campaign has not reached.
// After the campaign every valid day is open.
func guardDay(cal calendar.Calendar, now time.Time, day int) error {
	status := cal.Status(now)
	if status == calendar.StatusBefore {
		return ErrCampaignNotStarted
	}
	if day < 1 || day > calendar.TotalUnits {
		return ErrInvalidDay
	}
	if status == calendar.StatusDuring && day > cal.DayIndex(now) {
		return ErrFutureDayRejected
	}
	return nil
}
