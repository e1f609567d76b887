package user

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/shift-roster/internal/auth"
	"github.com/frahmantamala/shift-roster/internal/transport"
	"github.com/frahmantamala/shift-roster/pkg/logger"
)

type ServiceAPI interface {
	GetByID(userID int64) (*User, error)
	ListManagers() ([]ManagerEntry, error)
	ListAssociates(managerID int64) ([]AssociateEntry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetCurrentUser handles GET /users/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.Logger.Error("GetCurrentUser: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByID(current.ID)
	if err != nil {
		h.Logger.Error("GetCurrentUser: service GetByID failed", "user_id", current.ID, "error", err)
		h.WriteError(w, http.StatusNotFound, "profile not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// ListManagers handles GET /users/managers. Public: the signup form needs it
// before any session exists.
func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Service.ListManagers()
	if err != nil {
		h.Logger.Error("ListManagers: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list managers")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"managers": managers,
	})
}

// ListAssociates handles GET /users/associates (manager only, own associates).
func (h *Handler) ListAssociates(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.Logger.Error("ListAssociates: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	associates, err := h.Service.ListAssociates(current.ID)
	if err != nil {
		h.Logger.Error("ListAssociates: service error", "error", err, "manager_id", current.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list associates")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"associates": associates,
	})
}
