package leave

import (
	"time"

	leaveDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leave"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Leave struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	LeaveType   string     `json:"leave_type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      string     `json:"status"`
	Comment     *string    `json:"comment,omitempty"`
	ProcessedBy *int64     `json:"processed_by,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// OwnerName is populated for manager listings only.
	OwnerName string `json:"owner_name,omitempty"`
}

// Only pending leaves transition, and only once.
func (l *Leave) CanBeApproved() bool {
	return l.Status == StatusPending
}

func (l *Leave) CanBeRejected() bool {
	return l.Status == StatusPending
}

func (l *Leave) Covers(day time.Time) bool {
	d := day.Format("2006-01-02")
	return d >= l.StartDate.Format("2006-01-02") && d <= l.EndDate.Format("2006-01-02")
}

func ToDataModel(l *Leave) *leaveDatamodel.Leave {
	return &leaveDatamodel.Leave{
		ID:          l.ID,
		UserID:      l.UserID,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Status:      l.Status,
		Comment:     l.Comment,
		ProcessedBy: l.ProcessedBy,
		ProcessedAt: l.ProcessedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModel(l *leaveDatamodel.Leave) *Leave {
	return &Leave{
		ID:          l.ID,
		UserID:      l.UserID,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Status:      l.Status,
		Comment:     l.Comment,
		ProcessedBy: l.ProcessedBy,
		ProcessedAt: l.ProcessedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*leaveDatamodel.Leave) []*Leave {
	result := make([]*Leave, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
