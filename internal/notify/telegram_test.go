package notify

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type recordingSink struct {
	mu       sync.Mutex
	failures []string
}

func (s *recordingSink) RecordFailure(ctx context.Context, destination, text string, sendErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, destination)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// TestSend_DeliversToEveryChat verifies one sendMessage call per chat with
// HTML parse mode.
func TestSend_DeliversToEveryChat(t *testing.T) {
	var (
		mu       sync.Mutex
		received []capturedMessage
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken123/sendMessage", r.URL.Path)
		var msg capturedMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		mu.Lock()
		received = append(received, msg)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewService(Config{
		BotToken: "token123",
		ChatIDs:  []string{"chat-1", "chat-2"},
		Endpoint: server.URL,
	}, discardLogger(), nil)

	result := svc.Send(context.Background(), "<b>привіт</b>")
	assert.True(t, result.Delivered)
	assert.False(t, result.Skipped)

	require.Len(t, received, 2)
	assert.Equal(t, "chat-1", received[0].ChatID)
	assert.Equal(t, "chat-2", received[1].ChatID)
	assert.Equal(t, "<b>привіт</b>", received[0].Text)
	assert.Equal(t, "HTML", received[0].ParseMode)
}

// TestSend_FailureIsolation verifies a failing chat does not abort delivery
// to the others and lands in the failure sink.
func TestSend_FailureIsolation(t *testing.T) {
	var (
		mu        sync.Mutex
		delivered []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg capturedMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		if msg.ChatID == "broken" {
			http.Error(w, `{"ok":false}`, http.StatusBadRequest)
			return
		}
		mu.Lock()
		delivered = append(delivered, msg.ChatID)
		mu.Unlock()
	}))
	defer server.Close()

	sink := &recordingSink{}
	svc := NewService(Config{
		BotToken: "token123",
		ChatIDs:  []string{"broken", "healthy"},
		Endpoint: server.URL,
	}, discardLogger(), sink)

	result := svc.Send(context.Background(), "text")
	assert.False(t, result.Delivered)
	assert.False(t, result.Skipped)
	assert.Equal(t, []string{"healthy"}, delivered)
	assert.Equal(t, []string{"broken"}, sink.failures)
}

// TestSend_SkipsWhenUnconfigured verifies the no-op mode without credentials.
func TestSend_SkipsWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no token", Config{ChatIDs: []string{"chat-1"}}},
		{"no chats", Config{BotToken: "token123"}},
		{"blank chats", Config{BotToken: "token123", ChatIDs: []string{"  ", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg, discardLogger(), nil)
			result := svc.Send(context.Background(), "text")
			assert.True(t, result.Skipped)
			assert.False(t, result.Delivered)
		})
	}
}

// TestSend_DeduplicatesChats verifies a chat id listed twice receives one
// message.
func TestSend_DeduplicatesChats(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	svc := NewService(Config{
		BotToken: "token123",
		ChatIDs:  []string{"chat-1", " chat-1 ", "chat-1"},
		Endpoint: server.URL,
	}, discardLogger(), nil)

	result := svc.Send(context.Background(), "text")
	assert.True(t, result.Delivered)
	assert.Equal(t, 1, calls)
}
