package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/testutil"
)

type fakeFetcher struct {
	calls map[int]int
	err   error
}

func (f *fakeFetcher) FetchUnit(_ context.Context, number int) (*models.ContentUnit, error) {
	f.calls[number]++
	if f.err != nil {
		return nil, f.err
	}
	return &models.ContentUnit{Number: number, TotalVerses: number * 10}, nil
}

type memoryTier struct {
	units map[int]*models.ContentUnit
	err   error
}

func newMemoryTier() *memoryTier {
	return &memoryTier{units: make(map[int]*models.ContentUnit)}
}

func (m *memoryTier) GetUnit(_ context.Context, number int) (*models.ContentUnit, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.units[number], nil
}

func (m *memoryTier) PutUnit(_ context.Context, unit *models.ContentUnit) error {
	m.units[unit.Number] = unit
	return nil
}

func TestUnitsForDayGuard(t *testing.T) {
	svc := NewContentService(&fakeFetcher{calls: map[int]int{}}, testCalendar)

	tests := []struct {
		name    string
		day     int
		wantErr error
	}{
		{"future day", 6, ErrFutureDayRejected},
		{"day zero", 0, ErrInvalidDay},
		{"today", 5, nil},
	}
	svc.now = testutil.Clock(onDayFive)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UnitsForDay(context.Background(), tt.day)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UnitsForDay(%d) error = %v, want %v", tt.day, err, tt.wantErr)
			}
		})
	}

	svc.now = testutil.Clock(beforeStart)
	if _, err := svc.Today(context.Background()); !errors.Is(err, ErrCampaignNotStarted) {
		t.Errorf("Today before start error = %v, want ErrCampaignNotStarted", err)
	}
}

func TestUnitsForLastDayCoversTwoUnits(t *testing.T) {
	svc := NewContentService(&fakeFetcher{calls: map[int]int{}}, testCalendar)
	svc.now = testutil.Clock(afterEnd)

	got, err := svc.UnitsForDay(context.Background(), 29)
	if err != nil {
		t.Fatalf("UnitsForDay error = %v", err)
	}
	if len(got.Units) != 2 || got.Units[0].Number != 29 || got.Units[1].Number != 30 {
		t.Errorf("units = %+v, want 29 and 30", got.Units)
	}

	if _, err := svc.UnitsForDay(context.Background(), 30); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("day 30 error = %v, want ErrInvalidDay", err)
	}
}

func TestTodayAfterCampaignServesFinalDay(t *testing.T) {
	svc := NewContentService(&fakeFetcher{calls: map[int]int{}}, testCalendar)
	svc.now = testutil.Clock(afterEnd)

	got, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("Today after end error = %v", err)
	}
	if got.Day != testCalendar.Days {
		t.Errorf("Day = %d, want %d", got.Day, testCalendar.Days)
	}
	if len(got.Units) != 2 || got.Units[1].Number != 30 {
		t.Errorf("units = %+v, want 29 and 30", got.Units)
	}
}

func TestContentTiersReadThrough(t *testing.T) {
	fetcher := &fakeFetcher{calls: map[int]int{}}
	hot := newMemoryTier()
	cold := newMemoryTier()
	svc := NewContentService(fetcher, testCalendar, hot, cold)
	svc.now = testutil.Clock(onDayFive)
	ctx := context.Background()

	if _, err := svc.UnitsForDay(ctx, 3); err != nil {
		t.Fatalf("UnitsForDay error = %v", err)
	}
	if fetcher.calls[3] != 1 || hot.units[3] == nil || cold.units[3] == nil {
		t.Fatalf("miss did not fill both tiers: calls=%v", fetcher.calls)
	}

	// Hot tier lost the unit; the cold tier answers and refills it.
	delete(hot.units, 3)
	if _, err := svc.UnitsForDay(ctx, 3); err != nil {
		t.Fatalf("UnitsForDay error = %v", err)
	}
	if fetcher.calls[3] != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls[3])
	}
	if hot.units[3] == nil {
		t.Error("hot tier was not refilled from the cold tier")
	}
}

func TestContentTierErrorFallsThrough(t *testing.T) {
	fetcher := &fakeFetcher{calls: map[int]int{}}
	broken := newMemoryTier()
	broken.err = errors.New("redis down")
	svc := NewContentService(fetcher, testCalendar, broken)
	svc.now = testutil.Clock(onDayFive)

	got, err := svc.UnitsForDay(context.Background(), 2)
	if err != nil {
		t.Fatalf("UnitsForDay error = %v", err)
	}
	if got.Units[0].TotalVerses != 20 {
		t.Errorf("unit = %+v", got.Units[0])
	}
}

func TestContentUpstreamFailure(t *testing.T) {
	svc := NewContentService(&fakeFetcher{calls: map[int]int{}, err: errors.New("502")}, testCalendar)
	svc.now = testutil.Clock(onDayFive)

	if _, err := svc.UnitsForDay(context.Background(), 1); !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}
