package testutil

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"gorm.io/gorm"
)

var errDuplicate = errors.New("duplicate key value violates unique constraint")

// MockUserRepository is an in-memory repository.UserRepositoryInterface.
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uint]*models.User), nextID: 1}
}

func (m *MockUserRepository) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.PhoneNumber == user.PhoneNumber {
			return errDuplicate
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}
	m.users[user.ID] = cloneUser(user)
	return nil
}

// cloneUser detaches stored rows from callers, so a service that mutates a
// user without calling Update leaves the repository untouched.
func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByPhone(phone string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.PhoneNumber == phone {
			return cloneUser(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByPhoneContaining(fragment string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.sortedIDs() {
		if strings.Contains(m.users[id].PhoneNumber, fragment) {
			return cloneUser(m.users[id]), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByActivationToken(token string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ActivationToken != nil && *u.ActivationToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) Update(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = cloneUser(user)
	return nil
}

func (m *MockUserRepository) SetGroup(userID uint, groupID *uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if groupID == nil {
		u.GroupID = nil
		return nil
	}
	id := *groupID
	u.GroupID = &id
	return nil
}

func (m *MockUserRepository) ListByGroup(groupID uint) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, id := range m.sortedIDs() {
		u := m.users[id]
		if u.GroupID != nil && *u.GroupID == groupID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *MockUserRepository) sortedIDs() []uint {
	ids := make([]uint, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MockGroupRepository is an in-memory repository.GroupRepositoryInterface.
type MockGroupRepository struct {
	mu     sync.Mutex
	groups map[uint]*models.Group
	nextID uint
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{groups: make(map[uint]*models.Group), nextID: 1}
}

func (m *MockGroupRepository) Create(group *models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if group.ID == 0 {
		group.ID = m.nextID
	}
	if group.ID >= m.nextID {
		m.nextID = group.ID + 1
	}
	m.groups[group.ID] = group
	return nil
}

func (m *MockGroupRepository) FindByID(id uint) (*models.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) FindFirst() (*models.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var first *models.Group
	for _, g := range m.groups {
		if first == nil || g.ID < first.ID {
			first = g
		}
	}
	if first == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return first, nil
}

func (m *MockGroupRepository) Rename(id uint, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.Name = name
	return nil
}

// Count returns the number of stored groups.
func (m *MockGroupRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.groups)
}

type progressKey struct {
	userID uint
	day    int
}

// MockProgressRepository is an in-memory repository.ProgressRepositoryInterface.
// Writes are stamped with Now, which defaults to time.Now.
type MockProgressRepository struct {
	mu      sync.Mutex
	entries map[progressKey]*models.Progress
	nextID  uint
	Now     func() time.Time
}

func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{
		entries: make(map[progressKey]*models.Progress),
		nextID:  1,
		Now:     time.Now,
	}
}

func (m *MockProgressRepository) Upsert(entry *models.Progress) (*models.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := progressKey{entry.UserID, entry.Day}
	now := m.Now()
	if existing, ok := m.entries[key]; ok {
		existing.LastReadPage = entry.LastReadPage
		existing.IsCompleted = entry.IsCompleted
		existing.UpdatedAt = now
		out := *existing
		return &out, nil
	}
	row := &models.Progress{
		ID:           m.nextID,
		CreatedAt:    now,
		UpdatedAt:    now,
		UserID:       entry.UserID,
		Day:          entry.Day,
		LastReadPage: entry.LastReadPage,
		IsCompleted:  entry.IsCompleted,
	}
	m.nextID++
	m.entries[key] = row
	out := *row
	return &out, nil
}

func (m *MockProgressRepository) Find(userID uint, day int) (*models.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.entries[progressKey{userID, day}]; ok {
		out := *p
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProgressRepository) ListByUser(userID uint, window *repository.Window) ([]models.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Progress
	for _, p := range m.entries {
		if p.UserID == userID && inWindow(p, window) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}

func (m *MockProgressRepository) CountCompleted(userID uint, window *repository.Window) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.entries {
		if p.UserID == userID && p.IsCompleted && inWindow(p, window) {
			n++
		}
	}
	return n, nil
}

func (m *MockProgressRepository) CountCompletedByUsers(userIDs []uint, window *repository.Window) (map[uint]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}
	counts := make(map[uint]int64, len(userIDs))
	for _, p := range m.entries {
		if wanted[p.UserID] && p.IsCompleted && inWindow(p, window) {
			counts[p.UserID]++
		}
	}
	return counts, nil
}

func (m *MockProgressRepository) UserIDsWithIncompleteDay(day int) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uint
	for _, p := range m.entries {
		if p.Day == day && !p.IsCompleted {
			ids = append(ids, p.UserID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func inWindow(p *models.Progress, window *repository.Window) bool {
	if window == nil {
		return true
	}
	return !p.UpdatedAt.Before(window.From) && !p.UpdatedAt.After(window.To)
}

// MockSubscriptionRepository is an in-memory
// repository.SubscriptionRepositoryInterface.
type MockSubscriptionRepository struct {
	mu     sync.Mutex
	subs   map[uint]*models.PushSubscription
	nextID uint
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{subs: make(map[uint]*models.PushSubscription), nextID: 1}
}

func (m *MockSubscriptionRepository) Upsert(sub *models.PushSubscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.subs {
		if existing.UserID == sub.UserID && existing.Endpoint == sub.Endpoint {
			existing.P256dh = sub.P256dh
			existing.Auth = sub.Auth
			sub.ID = existing.ID
			return nil
		}
	}
	row := *sub
	row.ID = m.nextID
	m.nextID++
	sub.ID = row.ID
	m.subs[row.ID] = &row
	return nil
}

func (m *MockSubscriptionRepository) ListByUser(userID uint) ([]models.PushSubscription, error) {
	return m.ListByUsers([]uint{userID})
}

func (m *MockSubscriptionRepository) ListByUsers(userIDs []uint) ([]models.PushSubscription, error) {
	wanted := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}
	return m.filter(func(s *models.PushSubscription) bool { return wanted[s.UserID] }), nil
}

func (m *MockSubscriptionRepository) ListAll() ([]models.PushSubscription, error) {
	return m.filter(func(*models.PushSubscription) bool { return true }), nil
}

func (m *MockSubscriptionRepository) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, id)
	return nil
}

func (m *MockSubscriptionRepository) DeleteByEndpoint(userID uint, endpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.subs {
		if s.UserID == userID && s.Endpoint == endpoint {
			delete(m.subs, id)
		}
	}
	return nil
}

func (m *MockSubscriptionRepository) filter(keep func(*models.PushSubscription) bool) []models.PushSubscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.PushSubscription{}
	for _, s := range m.subs {
		if keep(s) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
