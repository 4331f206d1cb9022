package public

import (
	"net/http"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// recordViewHandler appends one page-view event. Admin views are excluded
// by the frontend before the request is ever made; this endpoint records
// whatever it is given.
func (h *Handler) recordViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statsRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		event := domain.StatisticsEvent{
			Path:      req.Path,
			UserAgent: r.Header.Get("User-Agent"),
			IP:        clientIP(r),
			Referrer:  req.Referrer,
			Screen:    req.Screen,
		}
		if err := h.stats.RecordView(r.Context(), event); err != nil {
			h.logger.Printf("record view failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]bool{"success": true})
	}
}

// clientIP is a best-effort read of the proxy header; the empty string is a
// legitimate value and counts as one distinct visitor.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	parts := strings.Split(forwarded, ",")
	return strings.TrimSpace(parts[0])
}
