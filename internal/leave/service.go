package leave

import (
	"context"
	"log/slog"
	"time"

	internal "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/core/events"
)

// Repository defines the data access methods for leaves
type Repository interface {
	Create(l *Leave) error
	GetByID(id int64) (*Leave, error)
	GetByUserID(userID int64, limit, offset int) ([]*Leave, error)
	GetForManager(managerID int64, limit, offset int) ([]*Leave, error)
	GetByUserIDIntersecting(userID int64, from, to time.Time) ([]*Leave, error)
	GetOwnerManagerID(ownerID int64) (*int64, error)
	UpdateStatus(id int64, status string, processedBy int64, processedAt time.Time) error
}

// TypeChecker is satisfied by the leavetype service.
type TypeChecker interface {
	IsValidLeaveType(name string) bool
}

// EventPublisher is satisfied by the events bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service handles the leave lifecycle: submit as pending, transition once.
type Service struct {
	repo   Repository
	types  TypeChecker
	bus    EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, types TypeChecker, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		types:  types,
		bus:    bus,
		logger: logger,
	}
}

// SubmitLeave creates a new leave owned by userID, always pending.
func (s *Service) SubmitLeave(userID int64, dto CreateLeaveDTO) (*Leave, error) {
	if appErr := dto.Validate(); appErr != nil {
		s.logger.Error("leave validation failed", "error", appErr, "user_id", userID)
		return nil, appErr
	}

	if !s.types.IsValidLeaveType(dto.LeaveType) {
		s.logger.Warn("leave submitted with unknown type", "leave_type", dto.LeaveType, "user_id", userID)
		return nil, internal.NewValidationError("unknown leave type", internal.ErrCodeInvalidLeaveType)
	}

	start, end := dto.Dates()
	now := time.Now()

	l := &Leave{
		UserID:    userID,
		LeaveType: dto.LeaveType,
		StartDate: start,
		EndDate:   end,
		Status:    StatusPending,
		Comment:   dto.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(l); err != nil {
		s.logger.Error("failed to create leave", "error", err, "user_id", userID)
		return nil, err
	}

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewLeaveSubmitted(l.ID, userID, l.LeaveType))
	}

	s.logger.Info("leave submitted",
		"leave_id", l.ID,
		"user_id", userID,
		"leave_type", l.LeaveType,
		"start_date", dto.StartDate,
		"end_date", dto.EndDate)

	return l, nil
}

// ListLeaves returns the caller's own leaves, or for managers the leaves of
// their linked associates. Ordered newest first either way.
func (s *Service) ListLeaves(userID int64, isManager bool, limit, offset int) ([]*Leave, error) {
	if isManager {
		leaves, err := s.repo.GetForManager(userID, limit, offset)
		if err != nil {
			s.logger.Error("failed to list leaves for manager", "error", err, "manager_id", userID)
			return nil, err
		}
		return leaves, nil
	}

	leaves, err := s.repo.GetByUserID(userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list own leaves", "error", err, "user_id", userID)
		return nil, err
	}
	return leaves, nil
}

// GetLeavesIntersecting loads one user's leaves whose interval touches
// [from, to]. The calendar engine feeds on this.
func (s *Service) GetLeavesIntersecting(userID int64, from, to time.Time) ([]*Leave, error) {
	leaves, err := s.repo.GetByUserIDIntersecting(userID, from, to)
	if err != nil {
		s.logger.Error("failed to load leaves for range", "error", err, "user_id", userID)
		return nil, err
	}
	return leaves, nil
}

func (s *Service) ApproveLeave(leaveID, managerID int64, isManager bool) error {
	return s.transition(leaveID, managerID, isManager, StatusApproved)
}

func (s *Service) RejectLeave(leaveID, managerID int64, isManager bool) error {
	return s.transition(leaveID, managerID, isManager, StatusRejected)
}

func (s *Service) transition(leaveID, managerID int64, isManager bool, newStatus string) error {
	if !isManager {
		s.logger.Warn("leave transition denied: caller is not a manager",
			"leave_id", leaveID,
			"acting_user_id", managerID)
		return internal.ErrManagerRequired
	}

	l, err := s.repo.GetByID(leaveID)
	if err != nil {
		s.logger.Error("leave not found for transition", "error", err, "leave_id", leaveID)
		return internal.ErrLeaveNotFound
	}

	ownerManagerID, err := s.repo.GetOwnerManagerID(l.UserID)
	if err != nil {
		s.logger.Error("failed to resolve leave owner's manager", "error", err, "leave_id", leaveID)
		return err
	}
	if ownerManagerID == nil || *ownerManagerID != managerID {
		s.logger.Warn("leave transition denied: leave owner is not a linked associate",
			"leave_id", leaveID,
			"owner_id", l.UserID,
			"acting_user_id", managerID)
		return internal.ErrUnauthorizedAccess
	}

	if l.Status != StatusPending {
		s.logger.Warn("cannot transition leave in current status",
			"leave_id", leaveID,
			"current_status", l.Status)
		return internal.ErrInvalidLeaveStatus
	}

	processedAt := time.Now()
	if err := s.repo.UpdateStatus(leaveID, newStatus, managerID, processedAt); err != nil {
		s.logger.Error("failed to update leave status", "error", err, "leave_id", leaveID, "status", newStatus)
		return err
	}

	if s.bus != nil {
		eventType := events.LeaveApproved
		if newStatus == StatusRejected {
			eventType = events.LeaveRejected
		}
		_ = s.bus.Publish(context.Background(), events.NewLeaveTransitioned(eventType, leaveID, l.UserID, managerID))
	}

	s.logger.Info("leave transitioned",
		"leave_id", leaveID,
		"manager_id", managerID,
		"status", newStatus)

	return nil
}
