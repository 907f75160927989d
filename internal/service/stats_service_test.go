package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/testutil"
)

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 1},
		{"gap after three", []int{10, 9, 8, 5}, 3},
		{"gap at the end", []int{5, 4, 3, 1}, 3},
		{"ascending input", []int{1, 2, 3}, 3},
		{"unsorted input", []int{2, 9, 3, 1}, 1},
		{"gap at the top", []int{12, 10, 9, 8, 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.days); got != tt.want {
				t.Errorf("Streak(%v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestStreakDoesNotReorderInput(t *testing.T) {
	days := []int{1, 2, 3}
	Streak(days)
	if days[0] != 1 || days[2] != 3 {
		t.Errorf("input reordered: %v", days)
	}
}

func TestRankLeaderboard(t *testing.T) {
	inputs := [][]LeaderboardEntry{
		nil,
		{{ID: 1, TotalRead: 3}},
		{{ID: 1, TotalRead: 1}, {ID: 2, TotalRead: 5}, {ID: 3, TotalRead: 3}},
		{
			{ID: 1, TotalRead: 2}, {ID: 2, TotalRead: 9}, {ID: 3, TotalRead: 2},
			{ID: 4, TotalRead: 7}, {ID: 5, TotalRead: 0}, {ID: 6, TotalRead: 2},
			{ID: 7, TotalRead: 11},
		},
	}

	for _, input := range inputs {
		got := RankLeaderboard(input, LeaderboardSize)

		if got == nil {
			t.Fatalf("RankLeaderboard(%v) = nil, want empty slice", input)
		}
		if len(got) > LeaderboardSize {
			t.Errorf("len = %d, want <= %d", len(got), LeaderboardSize)
		}
		for i := 1; i < len(got); i++ {
			if got[i].TotalRead > got[i-1].TotalRead {
				t.Errorf("not sorted descending: %v", got)
			}
		}
		inInput := make(map[uint]bool, len(input))
		for _, e := range input {
			inInput[e.ID] = true
		}
		for _, e := range got {
			if !inInput[e.ID] {
				t.Errorf("entry %d not in input", e.ID)
			}
		}
	}
}

func TestRankLeaderboardKeepsTieOrder(t *testing.T) {
	got := RankLeaderboard([]LeaderboardEntry{
		{ID: 1, TotalRead: 2}, {ID: 2, TotalRead: 4}, {ID: 3, TotalRead: 2}, {ID: 4, TotalRead: 2},
	}, 3)

	want := []uint{2, 1, 3}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %d, want %d", i, got[i].ID, id)
		}
	}
}

type statsFixture struct {
	stats     *StatsService
	progress  *testutil.MockProgressRepository
	requester *models.User
	ahead     *models.User
	behind    *models.User
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	users := testutil.NewMockUserRepository()
	progress := testutil.NewMockProgressRepository()
	groups := testutil.NewMockGroupRepository()

	requester := testutil.CreateActiveUser(t, users, "Ali", "5321111111", "")
	ahead := testutil.CreateActiveUser(t, users, "", "5322222222", "")
	behind := testutil.CreateActiveUser(t, users, "Veli", "5323333333", "")

	group := &models.Group{Name: models.DefaultGroupName, InviteCode: models.DefaultGroupInviteCode, AdminID: requester.ID}
	_ = groups.Create(group)
	for _, u := range []*models.User{requester, ahead, behind} {
		_ = users.SetGroup(u.ID, &group.ID)
	}

	record := func(userID uint, days ...int) {
		for _, d := range days {
			_, _ = progress.Upsert(&models.Progress{UserID: userID, Day: d, LastReadPage: d * 20, IsCompleted: true})
		}
	}

	// Written before the campaign window: counted overall, not in the window.
	progress.Now = testutil.Clock(testCalendar.Start.Add(-time.Hour))
	record(behind.ID, 30)

	progress.Now = testutil.Clock(onDayFive)
	record(requester.ID, 1, 2, 3, 5)
	record(ahead.ID, 1, 2, 3, 4, 5)
	record(behind.ID, 1)
	_, _ = progress.Upsert(&models.Progress{UserID: behind.ID, Day: 2, IsCompleted: false})

	stats := NewStatsService(progress, users, testCalendar)
	stats.now = testutil.Clock(onDayFive)
	return &statsFixture{stats: stats, progress: progress, requester: requester, ahead: ahead, behind: behind}
}

func TestDashboardStats(t *testing.T) {
	f := newStatsFixture(t)

	got, err := f.stats.DashboardStats(f.requester.ID)
	if err != nil {
		t.Fatalf("DashboardStats error = %v", err)
	}

	if got.CurrentDay != 5 {
		t.Errorf("CurrentDay = %d, want 5", got.CurrentDay)
	}
	if got.CompletedDays != 4 || got.UserProgressPct != 13 {
		t.Errorf("user progress = %d days, %d%%; want 4, 13%%", got.CompletedDays, got.UserProgressPct)
	}
	// (13.33 + 16.67 + 3.33) / 3 = 11.11
	if got.GroupProgressPct != 11 {
		t.Errorf("GroupProgressPct = %d, want 11", got.GroupProgressPct)
	}

	want := map[uint]MemberProgress{
		f.requester.ID: {Name: "Ali", Progress: 13, Status: MemberCompleted},
		f.ahead.ID:     {Name: models.PlaceholderName, Progress: 17, Status: MemberCompleted},
		f.behind.ID:    {Name: "Veli", Progress: 3, Status: MemberReading},
	}
	if len(got.Members) != len(want) {
		t.Fatalf("members = %d, want %d", len(got.Members), len(want))
	}
	for _, m := range got.Members {
		w := want[m.ID]
		if m.Name != w.Name || m.Progress != w.Progress || m.Status != w.Status {
			t.Errorf("member %d = %+v, want %+v", m.ID, m, w)
		}
	}
}

func TestDashboardStatsWithoutGroup(t *testing.T) {
	users := testutil.NewMockUserRepository()
	user := testutil.CreateActiveUser(t, users, "Yalnız", "5321111111", "")
	stats := NewStatsService(testutil.NewMockProgressRepository(), users, testCalendar)

	got, err := stats.DashboardStats(user.ID)
	if err != nil {
		t.Fatalf("DashboardStats error = %v", err)
	}
	if got.GroupProgressPct != 0 || len(got.Members) != 0 || got.Members == nil {
		t.Errorf("stats = %+v", got)
	}

	if _, err := stats.DashboardStats(404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}
}

func TestDetailedStats(t *testing.T) {
	f := newStatsFixture(t)

	got, err := f.stats.DetailedStats(f.requester.ID)
	if err != nil {
		t.Fatalf("DetailedStats error = %v", err)
	}
	if got.Stats.TotalRead != 4 || got.Stats.Streak != 1 {
		t.Errorf("stats = %+v, want 4 read, streak 1", got.Stats)
	}

	labels := []string{"Day 1", "Day 2", "Day 3", "Day 5"}
	if len(got.ChartData) != len(labels) {
		t.Fatalf("chart = %+v", got.ChartData)
	}
	for i, label := range labels {
		if got.ChartData[i].Label != label || got.ChartData[i].Completed != 1 {
			t.Errorf("chart[%d] = %+v, want %s completed", i, got.ChartData[i], label)
		}
	}

	// The leaderboard counts every completed entry, including ones written
	// outside the campaign window.
	wantOrder := []uint{f.ahead.ID, f.requester.ID, f.behind.ID}
	wantTotals := []int64{5, 4, 2}
	for i := range wantOrder {
		if got.Leaderboard[i].ID != wantOrder[i] || got.Leaderboard[i].TotalRead != wantTotals[i] {
			t.Errorf("leaderboard[%d] = %+v", i, got.Leaderboard[i])
		}
	}
}

func TestChartSeriesKeepsLastThirty(t *testing.T) {
	entries := make([]models.Progress, 0, 35)
	for day := 35; day >= 1; day-- {
		entries = append(entries, models.Progress{Day: day, IsCompleted: day%2 == 0})
	}

	points := chartSeries(entries)
	if len(points) != ChartLength {
		t.Fatalf("len = %d, want %d", len(points), ChartLength)
	}
	if points[0].Label != "Day 6" || points[len(points)-1].Label != "Day 35" {
		t.Errorf("range = %s..%s", points[0].Label, points[len(points)-1].Label)
	}
	if points[0].Completed != 1 || points[1].Completed != 0 {
		t.Errorf("completed flags = %d, %d", points[0].Completed, points[1].Completed)
	}
}
