package calendar

import (
	"log/slog"
	"time"

	internal "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/leave"
	"github.com/frahmantamala/shift-roster/internal/schedule"
)

type ScheduleReader interface {
	GetOwnSchedule(userID int64) (*schedule.Schedule, error)
}

type LeaveReader interface {
	GetLeavesIntersecting(userID int64, from, to time.Time) ([]*leave.Leave, error)
}

type LinkResolver interface {
	GetUserManagerID(userID int64) (*int64, error)
}

// MonthView is one user's fully resolved month.
type MonthView struct {
	UserID int64       `json:"user_id"`
	Month  string      `json:"month"`
	Days   []DayStatus `json:"days"`
}

// Service composes schedule and leave data into month views. Managers may
// view linked associates; everyone may view themselves.
type Service struct {
	schedules ScheduleReader
	leaves    LeaveReader
	links     LinkResolver
	logger    *slog.Logger
}

func NewService(schedules ScheduleReader, leaves LeaveReader, links LinkResolver, logger *slog.Logger) *Service {
	return &Service{
		schedules: schedules,
		leaves:    leaves,
		links:     links,
		logger:    logger,
	}
}

// MonthFor resolves targetUserID's month. A missing schedule is not an
// error: the engine marks every day unresolved.
func (s *Service) MonthFor(actorID int64, isManager bool, targetUserID int64, year int, month time.Month) (*MonthView, error) {
	if actorID != targetUserID {
		if !isManager {
			return nil, internal.ErrUnauthorizedAccess
		}
		managerID, err := s.links.GetUserManagerID(targetUserID)
		if err != nil {
			s.logger.Error("failed to resolve target user's manager", "error", err, "target_user_id", targetUserID)
			return nil, err
		}
		if managerID == nil || *managerID != actorID {
			s.logger.Warn("calendar read denied: target is not a linked associate",
				"acting_user_id", actorID,
				"target_user_id", targetUserID)
			return nil, internal.ErrUnauthorizedAccess
		}
	}

	sched, err := s.schedules.GetOwnSchedule(targetUserID)
	if err != nil {
		s.logger.Error("failed to load schedule for calendar", "error", err, "user_id", targetUserID)
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	leaves, err := s.leaves.GetLeavesIntersecting(targetUserID, first, last)
	if err != nil {
		s.logger.Error("failed to load leaves for calendar", "error", err, "user_id", targetUserID)
		return nil, err
	}

	return &MonthView{
		UserID: targetUserID,
		Month:  first.Format("2006-01"),
		Days:   MonthStatuses(year, month, sched, leaves),
	}, nil
}
