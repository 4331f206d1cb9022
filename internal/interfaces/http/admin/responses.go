package admin

import (
	"net/http"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
)

func (h *Handler) responsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID := r.URL.Query().Get("newsId")
		responses, err := h.surveys.ListResponses(r.Context(), newsID)
		if err != nil {
			h.logger.Printf("survey response list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]responseView, 0, len(responses))
		for _, response := range responses {
			views = append(views, mapResponseView(response))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}
