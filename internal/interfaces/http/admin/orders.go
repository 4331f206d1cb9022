package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) orderListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := h.orders.List(r.Context())
		if err != nil {
			h.logger.Printf("order list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]orderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, mapOrderView(order))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) orderStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req orderStatusRequest
		if !h.decodeBody(w, r, &req) {
			return
		}
		err := h.orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
		h.writeMutationResult(w, "order status update", err)
	}
}
