package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
)

const (
	LeaderboardSize = 5
	ChartLength     = 30

	MemberCompleted = "completed"
	MemberReading   = "reading"
)

type StatsService struct {
	progressRepo repository.ProgressRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	calendar     calendar.Calendar
	now          func() time.Time
}

func NewStatsService(
	progressRepo repository.ProgressRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	cal calendar.Calendar,
) *StatsService {
	return &StatsService{progressRepo: progressRepo, userRepo: userRepo, calendar: cal, now: time.Now}
}

type MemberProgress struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

type DashboardStats struct {
	UserProgressPct  int              `json:"userProgressPct"`
	GroupProgressPct int              `json:"groupProgressPct"`
	CurrentDay       int              `json:"currentDay"`
	CompletedDays    int64            `json:"completedDays"`
	Members          []MemberProgress `json:"members"`
}

type ChartPoint struct {
	Label     string    `json:"label"`
	Completed int       `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

type LeaderboardEntry struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	TotalRead int64  `json:"totalRead"`
}

type Summary struct {
	TotalRead int `json:"totalRead"`
	Streak    int `json:"streak"`
}

type DetailedStats struct {
	Stats       Summary            `json:"stats"`
	ChartData   []ChartPoint       `json:"chartData"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// DashboardStats counts only entries updated inside the campaign window.
// A member's status is relative to the requesting user: "completed" means
// they have read at least as many days.
func (s *StatsService) DashboardStats(userID uint) (*DashboardStats, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	window := s.campaignWindow()

	own, err := s.progressRepo.CountCompleted(userID, window)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		UserProgressPct: percentOfUnits(own),
		CurrentDay:      s.calendar.DayIndex(s.now()),
		CompletedDays:   own,
		Members:         []MemberProgress{},
	}
	if user.GroupID == nil {
		return stats, nil
	}

	members, err := s.userRepo.ListByGroup(*user.GroupID)
	if err != nil {
		return nil, err
	}
	counts, err := s.progressRepo.CountCompletedByUsers(userIDs(members), window)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, m := range members {
		count := counts[m.ID]
		sum += 100 * float64(count) / calendar.TotalUnits
		status := MemberReading
		if count >= own {
			status = MemberCompleted
		}
		stats.Members = append(stats.Members, MemberProgress{
			ID:       m.ID,
			Name:     displayName(m.Name),
			Progress: percentOfUnits(count),
			Status:   status,
		})
	}
	stats.GroupProgressPct = int(math.Round(sum / float64(max(len(members), 1))))
	return stats, nil
}

func (s *StatsService) DetailedStats(userID uint) (*DetailedStats, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	entries, err := s.progressRepo.ListByUser(userID, s.campaignWindow())
	if err != nil {
		return nil, err
	}
	days := make([]int, len(entries))
	for i, e := range entries {
		days[i] = e.Day
	}

	out := &DetailedStats{
		Stats:       Summary{TotalRead: len(entries), Streak: Streak(days)},
		ChartData:   chartSeries(entries),
		Leaderboard: []LeaderboardEntry{},
	}
	if user.GroupID == nil {
		return out, nil
	}

	members, err := s.userRepo.ListByGroup(*user.GroupID)
	if err != nil {
		return nil, err
	}
	counts, err := s.progressRepo.CountCompletedByUsers(userIDs(members), nil)
	if err != nil {
		return nil, err
	}
	board := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		board = append(board, LeaderboardEntry{ID: m.ID, Name: displayName(m.Name), TotalRead: counts[m.ID]})
	}
	out.Leaderboard = RankLeaderboard(board, LeaderboardSize)
	return out, nil
}

// Streak counts consecutive days downward from the most recent day and stops
// at the first gap: {10, 9, 8, 5} gives 3.
func Streak(days []int) int {
	if len(days) == 0 {
		return 0
	}
	sorted := append([]int(nil), days...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]-1 {
			break
		}
		streak++
	}
	return streak
}

// RankLeaderboard orders entries by TotalRead, highest first, keeping the
// input order between ties, and returns at most limit entries.
func RankLeaderboard(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	ranked := append([]LeaderboardEntry(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRead > ranked[j].TotalRead
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []LeaderboardEntry{}
	}
	return ranked
}

// chartSeries expects entries sorted by day descending.
func chartSeries(entries []models.Progress) []ChartPoint {
	points := make([]ChartPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		completed := 0
		if e.IsCompleted {
			completed = 1
		}
		points = append(points, ChartPoint{
			Label:     fmt.Sprintf("Day %d", e.Day),
			Completed: completed,
			Timestamp: e.UpdatedAt,
		})
	}
	if len(points) > ChartLength {
		points = points[len(points)-ChartLength:]
	}
	return points
}

func (s *StatsService) campaignWindow() *repository.Window {
	return &repository.Window{From: s.calendar.Start, To: s.calendar.End}
}

func percentOfUnits(count int64) int {
	return int(math.Round(100 * float64(count) / calendar.TotalUnits))
}

func userIDs(users []models.User) []uint {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func displayName(name string) string {
	if name == "" {
		return models.PlaceholderName
	}
	return name
}
