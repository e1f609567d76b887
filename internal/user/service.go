package user

import (
	"fmt"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	ListManagers() ([]ManagerEntry, error)
	ListAssociatesForManager(managerID int64) ([]AssociateEntry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// ListManagers backs the signup form's manager picker.
func (s *Service) ListManagers() ([]ManagerEntry, error) {
	managers, err := s.repo.ListManagers()
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return managers, nil
}

// ListAssociates returns the roster for one manager: only associates whose
// manager reference points at the caller.
func (s *Service) ListAssociates(managerID int64) ([]AssociateEntry, error) {
	associates, err := s.repo.ListAssociatesForManager(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list associates: %w", err)
	}
	return associates, nil
}
