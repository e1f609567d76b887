package calendar

import (
	"fmt"
	"time"

	"github.com/frahmantamala/shift-roster/internal/leave"
	"github.com/frahmantamala/shift-roster/internal/schedule"
)

const (
	StatusUnresolved    = "unresolved"
	StatusWeekOff       = "week_off"
	StatusLeaveApproved = "leave_approved"
	StatusLeavePending  = "leave_pending"
	StatusWorking       = "working"
)

const dateLayout = "2006-01-02"

// DayStatus is one resolved day of a user's month view.
type DayStatus struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
	Status  string `json:"status"`
	// Detail carries the shift window for working days and the leave type
	// for leave days. Empty otherwise.
	Detail string `json:"detail,omitempty"`
}

// MonthStatuses resolves every day of the given month. Resolution order per
// day: no schedule assigned wins everything, then week-off, then the first
// leave covering the day (rejected leaves never count), then working.
func MonthStatuses(year int, month time.Month, sched *schedule.Schedule, leaves []*leave.Leave) []DayStatus {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]DayStatus, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, resolveDay(day, sched, leaves))
	}
	return days
}

func resolveDay(day time.Time, sched *schedule.Schedule, leaves []*leave.Leave) DayStatus {
	status := DayStatus{
		Date:    day.Format(dateLayout),
		Weekday: int(day.Weekday()),
	}

	if sched == nil {
		status.Status = StatusUnresolved
		return status
	}

	if sched.IsWeekOff(day.Weekday()) {
		status.Status = StatusWeekOff
		return status
	}

	for _, l := range leaves {
		if l.Status == leave.StatusRejected {
			continue
		}
		if !l.Covers(day) {
			continue
		}
		if l.Status == leave.StatusApproved {
			status.Status = StatusLeaveApproved
		} else {
			status.Status = StatusLeavePending
		}
		status.Detail = l.LeaveType
		return status
	}

	status.Status = StatusWorking
	status.Detail = fmt.Sprintf("%s - %s", sched.ShiftStart, sched.ShiftEnd)
	return status
}
