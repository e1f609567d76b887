package leavetype

import (
	"time"

	leavetypeDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leavetype"
)

type LeaveType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *LeaveType) IsActiveType() bool {
	return t.IsActive
}

func (t *LeaveType) ToResponse() LeaveTypeResponse {
	return LeaveTypeResponse{
		Name:        t.Name,
		Description: t.Description,
	}
}

func NewLeaveType(name, description string) *LeaveType {
	now := time.Now()
	return &LeaveType{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func FromDataModel(t *leavetypeDatamodel.LeaveType) *LeaveType {
	return &LeaveType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToDataModel(t *LeaveType) *leavetypeDatamodel.LeaveType {
	return &leavetypeDatamodel.LeaveType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
