package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// DefaultTTL is how long, in seconds, the push service keeps an undelivered
// message.
const DefaultTTL = 12 * 60 * 60

// ErrGone means the push service no longer accepts the subscription and it
// should be deleted.
var ErrGone = errors.New("push subscription is gone")

type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Pusher delivers one payload to one subscription.
type Pusher interface {
	Send(ctx context.Context, sub Subscription, payload []byte) error
}

type VAPIDConfig struct {
	PublicKey  string
	PrivateKey string
	Subject    string
	TTL        int
}

// WebPusher sends encrypted Web Push messages signed with VAPID keys.
type WebPusher struct {
	cfg    VAPIDConfig
	client *http.Client
}

func NewWebPusher(cfg VAPIDConfig) *WebPusher {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	// webpush-go adds the mailto: scheme itself.
	cfg.Subject = strings.TrimPrefix(cfg.Subject, "mailto:")
	return &WebPusher{cfg: cfg, client: &http.Client{Timeout: 30 * time.Second}}
}

func (p *WebPusher) Send(ctx context.Context, sub Subscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      p.client,
		Subscriber:      p.cfg.Subject,
		VAPIDPublicKey:  p.cfg.PublicKey,
		VAPIDPrivateKey: p.cfg.PrivateKey,
		TTL:             p.cfg.TTL,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return statusError(resp.StatusCode)
}

// statusError maps a push service response code to a delivery outcome.
func statusError(code int) error {
	switch {
	case code == http.StatusGone || code == http.StatusNotFound:
		return ErrGone
	case code >= 400:
		return fmt.Errorf("push service responded %d", code)
	default:
		return nil
	}
}
