package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/models"
)

// UnitFetcher loads a content unit from its origin.
type UnitFetcher interface {
	FetchUnit(ctx context.Context, number int) (*models.ContentUnit, error)
}

// UnitStore is a cache tier. Get returns nil, nil on a miss.
type UnitStore interface {
	GetUnit(ctx context.Context, number int) (*models.ContentUnit, error)
	PutUnit(ctx context.Context, unit *models.ContentUnit) error
}

type ContentService struct {
	fetcher  UnitFetcher
	tiers    []UnitStore
	calendar calendar.Calendar
	now      func() time.Time
}

// NewContentService reads through tiers in order, fastest first, before
// falling back to fetcher.
func NewContentService(fetcher UnitFetcher, cal calendar.Calendar, tiers ...UnitStore) *ContentService {
	return &ContentService{fetcher: fetcher, tiers: tiers, calendar: cal, now: time.Now}
}

// Today returns the content for the current campaign day. Once the campaign
// has closed it keeps serving the final day.
func (s *ContentService) Today(ctx context.Context) (*models.DayContent, error) {
	now := s.now()
	if s.calendar.Status(now) == calendar.StatusAfter {
		return s.UnitsForDay(ctx, s.calendar.Days)
	}
	return s.UnitsForDay(ctx, s.calendar.DayIndex(now))
}

// UnitsForDay applies the same campaign guard as progress recording.
func (s *ContentService) UnitsForDay(ctx context.Context, day int) (*models.DayContent, error) {
	if err := guardDay(s.calendar, s.now(), day); err != nil {
		return nil, err
	}

	numbers := s.calendar.UnitsForDay(day)
	if len(numbers) == 0 {
		return nil, ErrInvalidDay
	}
	out := &models.DayContent{Day: day, Units: make([]models.ContentUnit, 0, len(numbers))}
	for _, n := range numbers {
		unit, err := s.loadUnit(ctx, n)
		if err != nil {
			return nil, err
		}
		out.Units = append(out.Units, *unit)
	}
	return out, nil
}

func (s *ContentService) loadUnit(ctx context.Context, number int) (*models.ContentUnit, error) {
	for i, tier := range s.tiers {
		unit, err := tier.GetUnit(ctx, number)
		if err != nil {
			log.Printf("Content tier %d read for unit %d failed: %v", i, number, err)
			continue
		}
		if unit != nil {
			s.fill(ctx, s.tiers[:i], unit)
			return unit, nil
		}
	}

	unit, err := s.fetcher.FetchUnit(ctx, number)
	if err != nil {
		log.Printf("Fetching content unit %d failed: %v", number, err)
		return nil, fmt.Errorf("%w: unit %d", ErrUpstream, number)
	}
	s.fill(ctx, s.tiers, unit)
	return unit, nil
}

func (s *ContentService) fill(ctx context.Context, tiers []UnitStore, unit *models.ContentUnit) {
	for _, tier := range tiers {
		if err := tier.PutUnit(ctx, unit); err != nil {
			log.Printf("Caching content unit %d failed: %v", unit.Number, err)
		}
	}
}
