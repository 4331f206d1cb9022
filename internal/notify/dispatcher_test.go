package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDispatcher_DrainsOnClose verifies Close waits for queued deliveries.
func TestDispatcher_DrainsOnClose(t *testing.T) {
	var (
		mu    sync.Mutex
		texts []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg capturedMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		mu.Lock()
		texts = append(texts, msg.Text)
		mu.Unlock()
	}))
	defer server.Close()

	svc := NewService(Config{
		BotToken: "token123",
		ChatIDs:  []string{"chat-1"},
		Endpoint: server.URL,
	}, discardLogger(), nil)
	dispatcher := NewDispatcher(svc, discardLogger(), 8)

	dispatcher.Dispatch("one")
	dispatcher.Dispatch("two")
	dispatcher.Close()

	assert.ElementsMatch(t, []string{"one", "two"}, texts)
}

// TestDispatcher_DispatchAfterClose verifies late messages are dropped
// silently instead of panicking on the closed queue.
func TestDispatcher_DispatchAfterClose(t *testing.T) {
	svc := NewService(Config{}, discardLogger(), nil)
	dispatcher := NewDispatcher(svc, discardLogger(), 1)
	dispatcher.Close()

	assert.NotPanics(t, func() { dispatcher.Dispatch("late") })
}

// TestDispatcher_CloseTwice verifies Close is idempotent.
func TestDispatcher_CloseTwice(t *testing.T) {
	svc := NewService(Config{}, discardLogger(), nil)
	dispatcher := NewDispatcher(svc, discardLogger(), 1)

	assert.NotPanics(t, func() {
		dispatcher.Close()
		dispatcher.Close()
	})
}
