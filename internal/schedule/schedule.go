package schedule

import (
	"time"

	scheduleDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/schedule"
)

// Schedule is a user's recurring weekly pattern: two week-off weekdays
// (0=Sunday..6=Saturday) and a daily shift window in "HH:MM".
type Schedule struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Weekoff1   int       `json:"weekoff_1"`
	Weekoff2   int       `json:"weekoff_2"`
	ShiftStart string    `json:"shift_start"`
	ShiftEnd   string    `json:"shift_end"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Schedule) IsWeekOff(weekday time.Weekday) bool {
	d := int(weekday)
	return d == s.Weekoff1 || d == s.Weekoff2
}

func ToDataModel(s *Schedule) *scheduleDatamodel.Schedule {
	return &scheduleDatamodel.Schedule{
		ID:         s.ID,
		UserID:     s.UserID,
		Weekoff1:   s.Weekoff1,
		Weekoff2:   s.Weekoff2,
		ShiftStart: s.ShiftStart,
		ShiftEnd:   s.ShiftEnd,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromDataModel(s *scheduleDatamodel.Schedule) *Schedule {
	return &Schedule{
		ID:         s.ID,
		UserID:     s.UserID,
		Weekoff1:   s.Weekoff1,
		Weekoff2:   s.Weekoff2,
		ShiftStart: s.ShiftStart,
		ShiftEnd:   s.ShiftEnd,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
