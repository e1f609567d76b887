package schedule

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	internal "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/auth"
	"github.com/frahmantamala/shift-roster/internal/transport"
	"github.com/frahmantamala/shift-roster/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	UpsertSchedule(actorID int64, isManager bool, targetUserID int64, dto UpsertScheduleDTO) (*Schedule, error)
	GetSchedule(actorID int64, isManager bool, targetUserID int64) (*Schedule, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	targetUserID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	var dto UpsertScheduleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpsertSchedule: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.Service.UpsertSchedule(user.ID, user.IsManager(), targetUserID, dto)
	if err != nil {
		h.Logger.Error("UpsertSchedule: service error",
			"error", err,
			"manager_id", user.ID,
			"target_user_id", targetUserID)
		h.handleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sched)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	targetUserID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	sched, err := h.Service.GetSchedule(user.ID, user.IsManager(), targetUserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sched)
}

func (h *Handler) userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid user ID in path", "user_id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, internal.ErrScheduleNotFound):
		h.WriteError(w, http.StatusNotFound, "schedule not found")
	case errors.Is(err, internal.ErrManagerRequired), errors.Is(err, internal.ErrUnauthorizedAccess):
		h.WriteError(w, http.StatusForbidden, "manager access required")
	default:
		h.HandleServiceError(w, err)
	}
}
