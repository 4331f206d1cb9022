package public

import (
	"net/http"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/auth"
	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
)

// loginHandler checks the admin credentials and sets the signed cookie.
// Wrong username and wrong password are indistinguishable to the caller.
func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, common.ErrCodeInvalid)
			return
		}

		if strings.TrimSpace(req.Username) != h.adminUsername || !auth.VerifyPassword(req.Password, h.adminPasswordHash) {
			common.WriteError(h.logger, w, http.StatusUnauthorized, common.ErrCodeUnauthorized)
			return
		}

		token, err := h.tokens.Issue(req.Username)
		if err != nil {
			h.logger.Printf("token issue failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     common.AdminTokenCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(h.tokens.TTL().Seconds()),
		})
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "token": token})
	}
}

func (h *Handler) logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     common.AdminTokenCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (h *Handler) verifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.AdminFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, common.ErrCodeUnauthorized)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"success": true,
			"user": map[string]string{
				"username": claims.Username,
				"role":     claims.Role,
			},
		})
	}
}
