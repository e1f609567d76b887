package leavetype

import (
	"net/http"

	"github.com/frahmantamala/shift-roster/internal/transport"
)

type ServiceAPI interface {
	GetAllLeaveTypes() ([]LeaveTypeResponse, error)
	IsValidLeaveType(name string) bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetLeaveTypes(w http.ResponseWriter, r *http.Request) {
	leaveTypes, err := h.Service.GetAllLeaveTypes()
	if err != nil {
		h.Logger.Error("GetLeaveTypes: failed to get leave types", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get leave types")
		return
	}

	h.WriteJSON(w, http.StatusOK, LeaveTypesResponse{
		LeaveTypes: leaveTypes,
	})
}
