package public

import (
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
)

const driveDownloadURL = "https://drive.google.com/uc?export=view&id="

var driveFilePattern = regexp.MustCompile(`/file/d/([^/]+)`)

// imageHandler proxies a Google Drive image so the browser never talks to
// Drive directly. The response streams through with the upstream content
// type and a one-day cache header.
func (h *Handler) imageHandler() http.HandlerFunc {
	return h.driveProxyHandler("image/jpeg")
}

func (h *Handler) videoHandler() http.HandlerFunc {
	return h.driveProxyHandler("video/mp4")
}

func (h *Handler) driveProxyHandler(fallbackContentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID := strings.TrimSpace(r.URL.Query().Get("id"))
		if fileID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, driveDownloadURL+url.QueryEscape(fileID), nil)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}

		res, err := h.mediaClient.Do(req)
		if err != nil {
			h.logger.Printf("drive fetch for %s failed: %v", fileID, err)
			common.WriteError(h.logger, w, http.StatusBadGateway, common.ErrCodeInternal)
			return
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			common.WriteError(h.logger, w, res.StatusCode, common.ErrCodeInternal)
			return
		}

		contentType := res.Header.Get("Content-Type")
		if contentType == "" {
			contentType = fallbackContentType
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, res.Body); err != nil {
			h.logger.Printf("drive stream for %s aborted: %v", fileID, err)
		}
	}
}

// ExtractDriveFileID pulls the file id out of the Drive URL shapes the
// admin panel pastes: file/d/{id} paths and open?id= links.
func ExtractDriveFileID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() != "drive.google.com" {
		return ""
	}
	if match := driveFilePattern.FindStringSubmatch(parsed.Path); len(match) == 2 {
		return match[1]
	}
	return parsed.Query().Get("id")
}
