package ws_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/damassweet/damas/pkg/ws"
)

func newTestHub(t *testing.T) (*ws.Hub, string) {
	t.Helper()

	hub := ws.NewHub()
	go hub.Run()

	srv := httptest.NewServer(hub.UpgradeHandler())
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *ws.Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d (have %d)", want, hub.ClientCount())
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub, url := newTestHub(t)

	first := dial(t, url)
	second := dial(t, url)
	waitForClients(t, hub, 2)

	msg := []byte(`{"type":"ORDER_UPDATED","payload":{"id":1}}`)
	hub.Broadcast(msg)

	for i, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("client %d read: %v", i, err)
		}
		if string(data) != string(msg) {
			t.Errorf("client %d got %s, want %s", i, data, msg)
		}
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	hub, url := newTestHub(t)

	conn := dial(t, url)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Broadcasting with nobody connected must not block or panic.
	hub.Broadcast([]byte(`{"type":"STOCK_UPDATED","payload":{}}`))
}

func TestMessagesArriveInOrder(t *testing.T) {
	hub, url := newTestHub(t)

	conn := dial(t, url)
	waitForClients(t, hub, 1)

	want := []string{`{"seq":1}`, `{"seq":2}`, `{"seq":3}`}
	for _, m := range want {
		hub.Broadcast([]byte(m))
	}

	for i, m := range want {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if string(data) != m {
			t.Errorf("message %d = %s, want %s", i, data, m)
		}
	}
}
