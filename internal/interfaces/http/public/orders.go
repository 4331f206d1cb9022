package public

import (
	"errors"
	"net/http"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

func (h *Handler) orderCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		order := domain.Order{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, domain.OrderItem{
				ServiceID:   item.ServiceID,
				ServiceName: item.ServiceName,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}

		placed, err := h.orders.Place(r.Context(), order)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "id": placed.ID})
		case errors.Is(err, publicapp.ErrOrderInvalid):
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
		default:
			h.logger.Printf("order creation failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
		}
	}
}
