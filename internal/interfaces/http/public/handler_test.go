package public

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhyrafyk/park-services/api/internal/auth"
	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type stubSurveyService struct {
	voteErr    error
	submitErr  error
	results    *domain.SurveyResults
	resultsErr error

	votedNews    string
	votedOptions []string
}

func (s *stubSurveyService) CastVote(ctx context.Context, newsID string, optionIDs []string) error {
	s.votedNews = newsID
	s.votedOptions = optionIDs
	return s.voteErr
}

func (s *stubSurveyService) SubmitFreeForm(ctx context.Context, newsID string, answers map[string]string) error {
	return s.submitErr
}

func (s *stubSurveyService) Results(ctx context.Context, newsID string) (*domain.SurveyResults, error) {
	if s.resultsErr != nil {
		return nil, s.resultsErr
	}
	if s.results != nil {
		return s.results, nil
	}
	return &domain.SurveyResults{OptionResults: map[string]int{}}, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T, surveys publicapp.SurveyService, tokens *auth.Tokens, username, passwordHash string) chi.Router {
	t.Helper()
	handler := NewHandler(Config{
		Logger:            log.New(io.Discard, "", 0),
		Surveys:           surveys,
		Tokens:            tokens,
		AdminUsername:     username,
		AdminPasswordHash: passwordHash,
	})
	router := chi.NewRouter()
	handler.Register(router, passthrough)
	return router
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload["error"]
}

// TestVoteEndpoint_StatusMapping verifies each survey failure maps to its
// documented status code and error code.
func TestVoteEndpoint_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		voteErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"invalid option", publicapp.ErrInvalidOption, http.StatusBadRequest, common.ErrCodeInvalidOption},
		{"multiple not allowed", publicapp.ErrMultipleNotAllowed, http.StatusBadRequest, common.ErrCodeMultipleNotAllowed},
		{"not found or expired", publicapp.ErrSurveyNotFound, http.StatusNotFound, common.ErrCodeSurveyNotFoundExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surveys := &stubSurveyService{voteErr: tt.voteErr}
			router := newTestRouter(t, surveys, nil, "", "")

			rec := postJSON(router, "/survey/vote", `{"newsId":"n1","optionIds":["opt-a"]}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
			assert.Equal(t, "n1", surveys.votedNews)
		})
	}
}

// TestVoteEndpoint_BadPayload verifies malformed or incomplete bodies are
// rejected before reaching the service.
func TestVoteEndpoint_BadPayload(t *testing.T) {
	for _, body := range []string{"not json", `{}`, `{"newsId":"n1"}`, `{"optionIds":["a"]}`} {
		surveys := &stubSurveyService{}
		router := newTestRouter(t, surveys, nil, "", "")

		rec := postJSON(router, "/survey/vote", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Empty(t, surveys.votedNews)
	}
}

// TestSubmitEndpoint verifies free-form submissions accept empty answer
// values but require the answers object itself.
func TestSubmitEndpoint(t *testing.T) {
	surveys := &stubSurveyService{}
	router := newTestRouter(t, surveys, nil, "", "")

	rec := postJSON(router, "/survey/submit", `{"newsId":"n1","answers":{"f1":""}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(router, "/survey/submit", `{"newsId":"n1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestResultsEndpoint verifies the tally projection and the missing-survey
// case.
func TestResultsEndpoint(t *testing.T) {
	last := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	surveys := &stubSurveyService{results: &domain.SurveyResults{
		TotalVotes:    5,
		OptionResults: map[string]int{"opt-a": 5},
		LastVoteAt:    &last,
	}}
	router := newTestRouter(t, surveys, nil, "", "")

	req := httptest.NewRequest(http.MethodGet, "/survey/results?newsId=n1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		TotalVotes    int            `json:"totalVotes"`
		OptionResults map[string]int `json:"optionResults"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 5, payload.TotalVotes)
	assert.Equal(t, 5, payload.OptionResults["opt-a"])

	// Missing id is a bad request, not a 404.
	req = httptest.NewRequest(http.MethodGet, "/survey/results", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	surveys.resultsErr = publicapp.ErrSurveyNotFound
	req = httptest.NewRequest(http.MethodGet, "/survey/results?newsId=missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, common.ErrCodeSurveyNotFoundExpired, errorCode(t, rec))
}

// TestLoginEndpoint verifies the cookie is set on valid credentials and
// wrong username and wrong password fail identically.
func TestLoginEndpoint(t *testing.T) {
	hash, err := auth.HashPassword("letmein")
	require.NoError(t, err)
	tokens := auth.NewTokens([]byte("test-secret"), "test-issuer", time.Hour)
	router := newTestRouter(t, &stubSurveyService{}, tokens, "admin", hash)

	rec := postJSON(router, "/auth", `{"username":"admin","password":"letmein"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, common.AdminTokenCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	claims, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"intruder","password":"letmein"}`,
	} {
		rec := postJSON(router, "/auth", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "body %q", body)
		assert.Equal(t, common.ErrCodeUnauthorized, errorCode(t, rec))
	}
}

// TestLogoutEndpoint verifies the cookie is expired.
func TestLogoutEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubSurveyService{}, nil, "", "")

	req := httptest.NewRequest(http.MethodDelete, "/auth", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, common.AdminTokenCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
