package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/edaniels/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		defer hub.Remove(conn)
		for {
			if _, _, err := conn.Read(context.Background()); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub(golog.NewTestLogger(t))
	srv := newTestServer(t, hub)

	a := dial(t, ctx, srv)
	b := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"ping"}`))

	for _, conn := range []*websocket.Conn{a, b} {
		typ, data, err := conn.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, websocket.MessageText, typ)
		assert.Equal(t, `{"type":"ping"}`, string(data))
	}
}

func TestHubRemoveOnClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub(golog.NewTestLogger(t))
	srv := newTestServer(t, hub)

	conn := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubBroadcastDropsDeadClient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub(golog.NewTestLogger(t))
	srv := newTestServer(t, hub)

	live := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	dead := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, dead.CloseNow())
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		hub.Broadcast([]byte("hello"))
		close(done)
	}()

	_, data, err := live.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("broadcast did not return")
	}
	assert.Equal(t, 1, hub.Count())
}

func TestHubCountDuringBroadcast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub(golog.NewTestLogger(t))
	srv := newTestServer(t, hub)
	conn := dial(t, ctx, srv)
	conn.SetReadLimit(8 << 20)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	// a large message keeps the write busy while the lock is queried
	payload := make([]byte, 4<<20)
	go hub.Broadcast(payload)

	counted := make(chan int, 1)
	go func() { counted <- hub.Count() }()
	select {
	case n := <-counted:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("Count blocked behind Broadcast")
	}

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, data, len(payload))
}
