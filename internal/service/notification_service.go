package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/push"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	// DeliveryConcurrency bounds simultaneous push requests in one broadcast.
	DeliveryConcurrency = 8

	ReminderTitle = "Okuma Vakti! 📖"
	ReminderBody  = "Ramazan sayfan seni bekliyor. Bugünün okumasını henüz yapmadın."
)

type NotificationService struct {
	subRepo      repository.SubscriptionRepositoryInterface
	progressRepo repository.ProgressRepositoryInterface
	pusher       push.Pusher
	calendar     calendar.Calendar
	now          func() time.Time
}

// NewNotificationService accepts a nil pusher; sending then fails with
// ErrPushNotConfigured while subscriptions are still stored.
func NewNotificationService(
	subRepo repository.SubscriptionRepositoryInterface,
	progressRepo repository.ProgressRepositoryInterface,
	pusher push.Pusher,
	cal calendar.Calendar,
) *NotificationService {
	return &NotificationService{
		subRepo:      subRepo,
		progressRepo: progressRepo,
		pusher:       pusher,
		calendar:     cal,
		now:          time.Now,
	}
}

type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type SubscriptionInput struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}

func (s *NotificationService) Subscribe(userID uint, input SubscriptionInput) error {
	endpoint := strings.TrimSpace(input.Endpoint)
	if endpoint == "" || input.Keys.P256dh == "" || input.Keys.Auth == "" {
		return ErrInvalidSubscription
	}
	return s.subRepo.Upsert(&models.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   input.Keys.P256dh,
		Auth:     input.Keys.Auth,
	})
}

func (s *NotificationService) Unsubscribe(userID uint, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ErrInvalidSubscription
	}
	return s.subRepo.DeleteByEndpoint(userID, endpoint)
}

// Target selects broadcast recipients: every subscription when All is set,
// otherwise the subscriptions of UserID.
type Target struct {
	All    bool
	UserID uint
}

type BroadcastResult struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *NotificationService) Broadcast(ctx context.Context, target Target, msg Notification) (*BroadcastResult, error) {
	if s.pusher == nil {
		return nil, ErrPushNotConfigured
	}

	var subs []models.PushSubscription
	var err error
	if target.All {
		subs, err = s.subRepo.ListAll()
	} else {
		subs, err = s.subRepo.ListByUser(target.UserID)
	}
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &BroadcastResult{Sent: s.deliver(ctx, subs, payload), Total: len(subs)}, nil
}

type ReminderResult struct {
	RemindersSent int `json:"remindersSent"`
	TargetUsers   int `json:"targetUsers"`
}

// Remind notifies every user holding an unfinished entry for today.
func (s *NotificationService) Remind(ctx context.Context) (*ReminderResult, error) {
	if s.pusher == nil {
		return nil, ErrPushNotConfigured
	}

	today := s.calendar.DayIndex(s.now())
	if today < 1 {
		return &ReminderResult{}, nil
	}
	userIDs, err := s.progressRepo.UserIDsWithIncompleteDay(today)
	if err != nil {
		return nil, err
	}
	subs, err := s.subRepo.ListByUsers(userIDs)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(Notification{Title: ReminderTitle, Body: ReminderBody})
	if err != nil {
		return nil, err
	}
	sent := s.deliver(ctx, subs, payload)
	log.Printf("Reminders for day %d: %d sent to %d users", today, sent, len(userIDs))
	return &ReminderResult{RemindersSent: sent, TargetUsers: len(userIDs)}, nil
}

// deliver sends to every subscription concurrently and settles all attempts.
// A failed delivery never stops the others; gone subscriptions are deleted.
func (s *NotificationService) deliver(ctx context.Context, subs []models.PushSubscription, payload []byte) int {
	var sent atomic.Int64
	var g errgroup.Group
	g.SetLimit(DeliveryConcurrency)

	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			err := s.pusher.Send(ctx, push.Subscription{
				Endpoint: sub.Endpoint,
				P256dh:   sub.P256dh,
				Auth:     sub.Auth,
			}, payload)
			switch {
			case err == nil:
				sent.Add(1)
			case errors.Is(err, push.ErrGone):
				if delErr := s.subRepo.Delete(sub.ID); delErr != nil {
					log.Printf("Failed to delete gone subscription %d: %v", sub.ID, delErr)
				}
			default:
				log.Printf("Push to subscription %d failed: %v", sub.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return int(sent.Load())
}

// ReminderScheduler runs Remind on a fixed interval while the campaign is on.
type ReminderScheduler struct {
	notifications *NotificationService
	calendar      calendar.Calendar
	interval      time.Duration
	now           func() time.Time
}

func NewReminderScheduler(notifications *NotificationService, cal calendar.Calendar, interval time.Duration) *ReminderScheduler {
	return &ReminderScheduler{notifications: notifications, calendar: cal, interval: interval, now: time.Now}
}

// Run blocks until ctx is cancelled.
func (r *ReminderScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *ReminderScheduler) tick(ctx context.Context) bool {
	if r.calendar.Status(r.now()) != calendar.StatusDuring {
		return false
	}
	if _, err := r.notifications.Remind(ctx); err != nil {
		log.Printf("Scheduled reminders failed: %v", err)
		return false
	}
	return true
}
