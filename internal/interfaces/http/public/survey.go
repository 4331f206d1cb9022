package public

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
)

func (h *Handler) voteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req voteRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}
		if strings.TrimSpace(req.NewsID) == "" || len(req.OptionIDs) == 0 {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		err := h.surveys.CastVote(r.Context(), req.NewsID, req.OptionIDs)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
		case errors.Is(err, publicapp.ErrInvalidOption):
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalidOption)
		case errors.Is(err, publicapp.ErrMultipleNotAllowed):
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeMultipleNotAllowed)
		case errors.Is(err, publicapp.ErrSurveyNotFound):
			common.WriteError(h.logger, w, http.StatusNotFound, common.ErrCodeSurveyNotFoundExpired)
		default:
			h.logger.Printf("vote for %s failed: %v", req.NewsID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
		}
	}
}

func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}
		if strings.TrimSpace(req.NewsID) == "" || req.Answers == nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		err := h.surveys.SubmitFreeForm(r.Context(), req.NewsID, req.Answers)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
		case errors.Is(err, publicapp.ErrSurveyNotFound):
			common.WriteError(h.logger, w, http.StatusNotFound, common.ErrCodeSurveyNotFoundExpired)
		default:
			h.logger.Printf("survey submission for %s failed: %v", req.NewsID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
		}
	}
}

func (h *Handler) resultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID := strings.TrimSpace(r.URL.Query().Get("newsId"))
		if newsID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		results, err := h.surveys.Results(r.Context(), newsID)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, mapResultsView(results))
		case errors.Is(err, publicapp.ErrSurveyNotFound):
			common.WriteError(h.logger, w, http.StatusNotFound, common.ErrCodeSurveyNotFoundExpired)
		default:
			h.logger.Printf("results for %s failed: %v", newsID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
		}
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
	return json.NewDecoder(r.Body).Decode(dst)
}
