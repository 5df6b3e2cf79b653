package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/pkg/logger"
	"github.com/gorilla/websocket"
)

// ReconnectDelay is the fixed backoff between connection attempts. There is
// no exponential schedule; a missed event is recovered by the full resync on
// the next successful connect, so reconnecting promptly matters more than
// being polite to a server that is already down.
const ReconnectDelay = 3 * time.Second

// Subscriber keeps a Feed synchronized with a running server: bulk fetch on
// every (re)connect, then merge pushed frames until the transport drops.
type Subscriber struct {
	BaseURL string // e.g. "http://localhost:3000"
	WSURL   string // e.g. "ws://localhost:3000/ws"
	Token   string // optional bearer token for the bulk fetch
	// FetchUsers controls whether the resync also seeds the user list
	// (admin-shaped dashboards).
	FetchUsers bool

	HTTPClient *http.Client

	mu   sync.Mutex
	feed *Feed
}

// NewSubscriber builds a subscriber around the given feed.
func NewSubscriber(baseURL, wsURL string, feed *Feed) *Subscriber {
	return &Subscriber{
		BaseURL:    baseURL,
		WSURL:      wsURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		feed:       feed,
	}
}

// Feed returns the underlying feed. Callers must hold no assumption about
// concurrent mutation while Run is active; use Snapshot for reads.
func (s *Subscriber) Feed() *Feed { return s.feed }

// Snapshot returns copies of the current local lists.
func (s *Subscriber) Snapshot() ([]models.Order, []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.feed.Orders))
	copy(orders, s.feed.Orders)
	users := make([]models.User, len(s.feed.Users))
	copy(users, s.feed.Users)
	return orders, users
}

// Run connects, resyncs, and consumes frames until ctx is cancelled.
// Transport failures are not errors: the subscriber waits ReconnectDelay
// and starts over with a fresh full resync.
func (s *Subscriber) Run(ctx context.Context) {
	for {
		if err := s.connectOnce(ctx); err != nil {
			logger.Warn("client: connection lost", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(ReconnectDelay):
		}
	}
}

func (s *Subscriber) connectOnce(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.WSURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.WSURL, err)
	}
	defer conn.Close()

	// Resync after the socket is open so no event can slip between the
	// fetch and the subscription.
	if err := s.resync(ctx); err != nil {
		return fmt.Errorf("resync: %w", err)
	}

	// The watcher closes the socket on cancellation and exits with the
	// connection, whichever comes first.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		frame, known, err := realtime.Decode(data)
		if err != nil {
			logger.Warn("client: bad frame", "error", err)
			continue
		}
		if !known {
			continue
		}

		s.mu.Lock()
		err = s.feed.ApplyFrame(frame)
		s.mu.Unlock()
		if err != nil {
			logger.Warn("client: merge failed", "type", frame.Type, "error", err)
		}
	}
}

// resync performs the bulk fetch that seeds the feed.
func (s *Subscriber) resync(ctx context.Context) error {
	orders, err := fetchList[models.Order](ctx, s, "/api/orders")
	if err != nil {
		return err
	}

	var users []models.User
	if s.FetchUsers {
		users, err = fetchList[models.User](ctx, s, "/api/users")
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.feed.Seed(orders, users)
	s.mu.Unlock()
	return nil
}

// apiEnvelope mirrors the server's response wrapper.
type apiEnvelope[T any] struct {
	Status int `json:"status"`
	Data   []T `json:"data"`
}

func fetchList[T any](ctx context.Context, s *Subscriber, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}

	var env apiEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return env.Data, nil
}
