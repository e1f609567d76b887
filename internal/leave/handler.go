package leave

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	internal "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/auth"
	"github.com/frahmantamala/shift-roster/internal/transport"
	"github.com/frahmantamala/shift-roster/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	SubmitLeave(userID int64, dto CreateLeaveDTO) (*Leave, error)
	ListLeaves(userID int64, isManager bool, limit, offset int) ([]*Leave, error)
	GetLeavesIntersecting(userID int64, from, to time.Time) ([]*Leave, error)
	ApproveLeave(leaveID, managerID int64, isManager bool) error
	RejectLeave(leaveID, managerID int64, isManager bool) error
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

func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("SubmitLeave: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitLeave: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.Service.SubmitLeave(user.ID, dto)
	if err != nil {
		h.Logger.Error("SubmitLeave: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("SubmitLeave: leave created",
		"leave_id", l.ID,
		"user_id", user.ID,
		"leave_type", l.LeaveType)

	h.WriteJSON(w, http.StatusCreated, l)
}

func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("ListLeaves: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 20
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	leaves, err := h.Service.ListLeaves(user.ID, user.IsManager(), limit, offset)
	if err != nil {
		h.Logger.Error("ListLeaves: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list leaves")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"leaves": leaves,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusApproved)
}

func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusRejected)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, newStatus string) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("transition: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leaveIDStr := chi.URLParam(r, "id")
	leaveID, err := strconv.ParseInt(leaveIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("transition: invalid leave ID", "id", leaveIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid leave ID")
		return
	}

	if newStatus == StatusApproved {
		err = h.Service.ApproveLeave(leaveID, user.ID, user.IsManager())
	} else {
		err = h.Service.RejectLeave(leaveID, user.ID, user.IsManager())
	}

	if err != nil {
		h.Logger.Error("transition: service error",
			"error", err,
			"leave_id", leaveID,
			"manager_id", user.ID,
			"status", newStatus)

		switch {
		case errors.Is(err, internal.ErrLeaveNotFound):
			h.WriteError(w, http.StatusNotFound, "leave not found")
		case errors.Is(err, internal.ErrInvalidLeaveStatus):
			h.WriteError(w, http.StatusConflict, "leave is not pending")
		case errors.Is(err, internal.ErrManagerRequired), errors.Is(err, internal.ErrUnauthorizedAccess):
			h.WriteError(w, http.StatusForbidden, "manager access required")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to update leave status")
		}
		return
	}

	h.Logger.Info("transition: leave status updated", "leave_id", leaveID, "manager_id", user.ID, "status", newStatus)
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": newStatus})
}
