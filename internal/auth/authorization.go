package auth

import (
	"log/slog"
	"net/http"
)

// RoleAuthorization gates manager-only routes. The roster has exactly two
// roles, so there is no permission table; the users row's role column decides.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

func (ra *RoleAuthorization) RequireManager() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Unresolved role counts as not-a-manager, not as signed out.
			if !user.IsManager() {
				ra.logger.WarnContext(r.Context(), "access denied: manager role required",
					"user_id", user.ID,
					"role", user.Role)
				http.Error(w, "Forbidden: manager role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
