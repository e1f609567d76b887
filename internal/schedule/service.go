package schedule

import (
	"log/slog"
	"time"

	internal "github.com/frahmantamala/shift-roster/internal"
)

// Repository defines the data access methods for schedules.
type Repository interface {
	Upsert(s *Schedule) error
	GetByUserID(userID int64) (*Schedule, error)
	GetUserManagerID(userID int64) (*int64, error)
}

// Service assigns and reads weekly shift patterns. Writes are manager-scoped:
// a manager can only touch schedules of their own linked associates.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// UpsertSchedule creates or replaces the target user's schedule. The caller
// must be a manager and the target one of their linked associates.
func (s *Service) UpsertSchedule(actorID int64, isManager bool, targetUserID int64, dto UpsertScheduleDTO) (*Schedule, error) {
	if !isManager {
		s.logger.Warn("schedule upsert denied: caller is not a manager",
			"acting_user_id", actorID,
			"target_user_id", targetUserID)
		return nil, internal.ErrManagerRequired
	}

	if appErr := dto.Validate(); appErr != nil {
		s.logger.Error("schedule validation failed", "error", appErr, "target_user_id", targetUserID)
		return nil, appErr
	}

	managerID, err := s.repo.GetUserManagerID(targetUserID)
	if err != nil {
		s.logger.Error("failed to resolve target user's manager", "error", err, "target_user_id", targetUserID)
		return nil, err
	}
	if managerID == nil || *managerID != actorID {
		s.logger.Warn("schedule upsert denied: target is not a linked associate",
			"acting_user_id", actorID,
			"target_user_id", targetUserID)
		return nil, internal.ErrUnauthorizedAccess
	}

	now := time.Now()
	sched := &Schedule{
		UserID:     targetUserID,
		Weekoff1:   *dto.Weekoff1,
		Weekoff2:   *dto.Weekoff2,
		ShiftStart: dto.ShiftStart,
		ShiftEnd:   dto.ShiftEnd,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Upsert(sched); err != nil {
		s.logger.Error("failed to upsert schedule", "error", err, "target_user_id", targetUserID)
		return nil, err
	}

	s.logger.Info("schedule upserted",
		"manager_id", actorID,
		"target_user_id", targetUserID,
		"weekoff_1", sched.Weekoff1,
		"weekoff_2", sched.Weekoff2)

	return sched, nil
}

// GetSchedule returns a user's schedule. Callers may read their own schedule;
// managers may also read schedules of their linked associates.
func (s *Service) GetSchedule(actorID int64, isManager bool, targetUserID int64) (*Schedule, error) {
	if actorID != targetUserID {
		if !isManager {
			return nil, internal.ErrUnauthorizedAccess
		}
		managerID, err := s.repo.GetUserManagerID(targetUserID)
		if err != nil {
			s.logger.Error("failed to resolve target user's manager", "error", err, "target_user_id", targetUserID)
			return nil, err
		}
		if managerID == nil || *managerID != actorID {
			s.logger.Warn("schedule read denied: target is not a linked associate",
				"acting_user_id", actorID,
				"target_user_id", targetUserID)
			return nil, internal.ErrUnauthorizedAccess
		}
	}

	sched, err := s.repo.GetByUserID(targetUserID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, internal.ErrScheduleNotFound
	}
	return sched, nil
}

// GetOwnSchedule returns the caller's schedule, or nil without error when the
// caller has none assigned yet. The calendar engine tolerates the absence.
func (s *Service) GetOwnSchedule(userID int64) (*Schedule, error) {
	return s.repo.GetByUserID(userID)
}
