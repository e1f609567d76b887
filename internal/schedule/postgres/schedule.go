package postgres

import (
	"time"

	scheduleDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/schedule"
	"github.com/frahmantamala/shift-roster/internal/schedule"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) schedule.Repository {
	return &ScheduleRepository{db: db}
}

// Upsert keys on user_id: each user has at most one schedule row and a
// second write replaces the pattern in place.
func (r *ScheduleRepository) Upsert(s *schedule.Schedule) error {
	row := schedule.ToDataModel(s)
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"weekoff_1":   row.Weekoff1,
			"weekoff_2":   row.Weekoff2,
			"shift_start": row.ShiftStart,
			"shift_end":   row.ShiftEnd,
			"updated_at":  time.Now(),
		}),
	}).Create(row).Error
	if err != nil {
		return err
	}
	s.ID = row.ID
	return nil
}

// GetByUserID returns nil without error when the user has no schedule yet.
func (r *ScheduleRepository) GetByUserID(userID int64) (*schedule.Schedule, error) {
	var row scheduleDatamodel.Schedule
	err := r.db.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return schedule.FromDataModel(&row), nil
}

func (r *ScheduleRepository) GetUserManagerID(userID int64) (*int64, error) {
	var row struct {
		ManagerID *int64
	}
	err := r.db.
		Table("users").
		Select("manager_id").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.ManagerID, nil
}
