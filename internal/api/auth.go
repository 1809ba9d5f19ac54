package api

import (
	"context"
	"net/http"

	"github.com/examprep/backend/internal/domain/user"
)

// userIDHeader carries the caller's identity. There are no credentials.
const userIDHeader = "user-id"

// requireUser resolves the user-id header and rejects the request with 401
// when it is missing or names no user.
func (h *Handler) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := h.accounts.Authenticate(r.Context(), r.Header.Get(userIDHeader))
		if h.respondServiceError(w, r, err, "user") {
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	}
}

// requireAdmin is requireUser plus a 403 for non-admin callers.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if !currentUser(r).IsAdmin() {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

// currentUser returns the caller attached by requireUser.
func currentUser(r *http.Request) *user.User {
	u, _ := r.Context().Value(userKey).(*user.User)
	return u
}

// allowSelf writes a 403 unless the caller is userID or an admin.
func allowSelf(w http.ResponseWriter, r *http.Request, userID string) bool {
	caller := currentUser(r)
	if caller.ID == userID || caller.IsAdmin() {
		return true
	}
	respondError(w, http.StatusForbidden, "not permitted")
	return false
}
