package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeaveSubmitted = "leave.submitted"
	LeaveApproved  = "leave.approved"
	LeaveRejected  = "leave.rejected"
)

// NewLeaveSubmitted is published when an associate files a new leave request.
func NewLeaveSubmitted(leaveID, ownerID int64, leaveType string) Event {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      LeaveSubmitted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"leave_id":   leaveID,
			"owner_id":   ownerID,
			"leave_type": leaveType,
		},
	}
}

// NewLeaveTransitioned is published after a manager approves or rejects a
// pending leave. eventType must be LeaveApproved or LeaveRejected.
func NewLeaveTransitioned(eventType string, leaveID, ownerID, actorID int64) Event {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"leave_id": leaveID,
			"owner_id": ownerID,
			"actor_id": actorID,
		},
	}
}
