package postgres

import (
	"errors"

	scheduleDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/schedule"
	userDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/user"
	"github.com/frahmantamala/shift-roster/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

func (r *UserRepository) ListManagers() ([]user.ManagerEntry, error) {
	var rows []userDatamodel.User
	err := r.db.
		Where("role = ? AND is_active = true", "manager").
		Order("full_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	managers := make([]user.ManagerEntry, len(rows))
	for i, row := range rows {
		managers[i] = user.ManagerEntry{
			ID:       row.ID,
			Email:    row.Email,
			FullName: row.FullName,
		}
	}
	return managers, nil
}

func (r *UserRepository) ListAssociatesForManager(managerID int64) ([]user.AssociateEntry, error) {
	var rows []userDatamodel.User
	err := r.db.
		Where("role = ? AND manager_id = ? AND is_active = true", "associate", managerID).
		Order("full_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]user.AssociateEntry, 0, len(rows))
	for _, row := range rows {
		entry := user.AssociateEntry{
			ID:       row.ID,
			Email:    row.Email,
			FullName: row.FullName,
		}

		var sched scheduleDatamodel.Schedule
		err := r.db.Where("user_id = ?", row.ID).First(&sched).Error
		if err == nil {
			entry.Schedule = &user.AssociateSchedule{
				Weekoff1:   sched.Weekoff1,
				Weekoff2:   sched.Weekoff2,
				ShiftStart: sched.ShiftStart,
				ShiftEnd:   sched.ShiftEnd,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
