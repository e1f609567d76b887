package leavetype

import (
	"log/slog"

	leavetypeDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leavetype"
)

type RepositoryAPI interface {
	GetAll() ([]*leavetypeDatamodel.LeaveType, error)
	GetByName(name string) (*leavetypeDatamodel.LeaveType, error)
	Create(leaveType *leavetypeDatamodel.LeaveType) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllLeaveTypes() ([]LeaveTypeResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get leave types from repository", "error", err)
		return nil, err
	}

	var responses []LeaveTypeResponse
	for _, row := range rows {
		t := FromDataModel(row)
		if t.IsActiveType() {
			responses = append(responses, t.ToResponse())
		}
	}

	return responses, nil
}

// IsValidLeaveType reports whether name is an active leave type. Leave
// submission consults this before anything touches the leaves table.
func (s *Service) IsValidLeaveType(name string) bool {
	row, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Warn("error checking leave type validity", "name", name, "error", err)
		return false
	}
	return row != nil && row.IsActive
}
