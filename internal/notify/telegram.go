// Package notify delivers best-effort plain-text (HTML-lite) messages to
// Telegram chats. Failures are logged and recorded, never propagated: the
// operations that trigger notifications must not depend on their delivery.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.telegram.org"

// Config is built once at startup and injected; the relay reads no globals.
type Config struct {
	// BotToken and ChatIDs may be empty: the relay then degrades to a
	// documented no-op rather than an error.
	BotToken string
	ChatIDs  []string
	// Endpoint overrides the Telegram API base URL, used by tests.
	Endpoint string
	Timeout  time.Duration
}

// Result reports the aggregate outcome of one delivery round. Callers treat
// the relay as fire-and-forget and never act on it; it exists for logging
// and tests.
type Result struct {
	// Delivered is true only if every destination succeeded.
	Delivered bool
	// Skipped marks the not-configured no-op case.
	Skipped bool
}

// FailureSink records undeliverable messages for later inspection. A nil
// sink disables recording.
type FailureSink interface {
	RecordFailure(ctx context.Context, destination, text string, sendErr error)
}

// Service sends one message per configured chat. No queuing, no retry,
// no backoff.
type Service struct {
	cfg      Config
	client   *http.Client
	logger   *log.Logger
	failures FailureSink
}

// NewService builds the relay with its own short-timeout HTTP client so a
// hanging Telegram API cannot stall callers past the configured bound.
func NewService(cfg Config, logger *log.Logger, failures FailureSink) *Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Service{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		failures: failures,
	}
}

// Configured reports whether credentials and at least one chat are present.
func (s *Service) Configured() bool {
	return strings.TrimSpace(s.cfg.BotToken) != "" && len(s.dedupedChats()) > 0
}

// Send delivers text to every configured chat. A failure on one chat is
// logged and does not abort delivery to the rest.
func (s *Service) Send(ctx context.Context, text string) Result {
	if !s.Configured() {
		if s.logger != nil {
			s.logger.Printf("telegram not configured, skipping notification")
		}
		return Result{Skipped: true}
	}

	delivered := true
	for _, chatID := range s.dedupedChats() {
		if err := s.sendMessage(ctx, chatID, text); err != nil {
			delivered = false
			if s.logger != nil {
				s.logger.Printf("telegram send to %s failed: %v", chatID, err)
			}
			if s.failures != nil {
				s.failures.RecordFailure(ctx, chatID, text, err)
			}
		}
	}
	return Result{Delivered: delivered}
}

func (s *Service) dedupedChats() []string {
	seen := make(map[string]struct{}, len(s.cfg.ChatIDs))
	chats := make([]string, 0, len(s.cfg.ChatIDs))
	for _, chatID := range s.cfg.ChatIDs {
		chatID = strings.TrimSpace(chatID)
		if chatID == "" {
			continue
		}
		if _, dup := seen[chatID]; dup {
			continue
		}
		seen[chatID] = struct{}{}
		chats = append(chats, chatID)
	}
	return chats
}

func (s *Service) sendMessage(ctx context.Context, chatID, text string) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(s.cfg.Endpoint, "/") + "/bot" + s.cfg.BotToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("telegram responded status=%d body=%s", res.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
