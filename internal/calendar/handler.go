package calendar

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	internal "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/auth"
	"github.com/frahmantamala/shift-roster/internal/transport"
	"github.com/frahmantamala/shift-roster/pkg/logger"
)

type ServiceAPI interface {
	MonthFor(actorID int64, isManager bool, targetUserID int64, year int, month time.Month) (*MonthView, error)
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

// GetMonth serves the month view. Defaults: the caller's own calendar and
// the current month. ?user_id is for managers viewing linked associates,
// ?month takes "YYYY-MM".
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	now := time.Now()
	year, month := now.Year(), now.Month()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			h.Logger.Error("GetMonth: invalid month parameter", "month", monthStr)
			h.WriteError(w, http.StatusBadRequest, "month must be in YYYY-MM format")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	targetUserID := user.ID
	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		id, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid user_id parameter")
			return
		}
		targetUserID = id
	}

	view, err := h.Service.MonthFor(user.ID, user.IsManager(), targetUserID, year, month)
	if err != nil {
		h.Logger.Error("GetMonth: service error",
			"error", err,
			"acting_user_id", user.ID,
			"target_user_id", targetUserID)
		if errors.Is(err, internal.ErrUnauthorizedAccess) {
			h.WriteError(w, http.StatusForbidden, "manager access required")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}
