package admin

import (
	"net/http"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
)

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := h.stats.Dashboard(r.Context())
		if err != nil {
			h.logger.Printf("dashboard build failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, dashboard)
	}
}
