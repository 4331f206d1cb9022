package public

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractDriveFileID covers the Drive URL shapes the admin panel pastes.
func TestExtractDriveFileID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"file path", "https://drive.google.com/file/d/abc123/view?usp=sharing", "abc123"},
		{"open link", "https://drive.google.com/open?id=xyz789", "xyz789"},
		{"uc link", "https://drive.google.com/uc?export=view&id=qwe456", "qwe456"},
		{"other host", "https://example.com/file/d/abc123/view", ""},
		{"no id", "https://drive.google.com/drive/my-drive", ""},
		{"garbage", "::::", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDriveFileID(tt.url))
		})
	}
}

// TestClientIP verifies the first forwarded address wins and absence yields
// the empty string.
func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/stats", nil)
	assert.Equal(t, "", clientIP(req))

	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	assert.Equal(t, "1.1.1.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 2.2.2.2 , 10.0.0.1")
	assert.Equal(t, "2.2.2.2", clientIP(req))
}
