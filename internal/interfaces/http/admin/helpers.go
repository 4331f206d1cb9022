package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	adminapp "github.com/zhyrafyk/park-services/api/internal/admin/application"
	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
)

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
		return false
	}
	return true
}

// writeMutationResult maps service errors onto the admin error contract:
// invalid input is a 400, a missing document a 404, anything else a logged 500.
func (h *Handler) writeMutationResult(w http.ResponseWriter, operation string, err error) {
	switch {
	case err == nil:
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
	case errors.Is(err, adminapp.ErrInvalidInput):
		common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
	case errors.Is(err, publicapp.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, common.ErrCodeNotFound)
	default:
		h.logger.Printf("%s failed: %v", operation, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
	}
}

func (h *Handler) writeCreated(w http.ResponseWriter, operation, id string, err error) {
	switch {
	case err == nil:
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "id": id})
	case errors.Is(err, adminapp.ErrInvalidInput):
		common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
	default:
		h.logger.Printf("%s failed: %v", operation, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
	}
}

type idRequest struct {
	ID string `json:"id"`
}

func (h *Handler) deleteByBodyID(operation string, remove func(r *http.Request, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req idRequest
		if !h.decodeBody(w, r, &req) {
			return
		}
		if req.ID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}
		h.writeMutationResult(w, operation, remove(r, req.ID))
	}
}
