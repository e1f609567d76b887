package schedule

import "time"

// Schedule is one recurring-shift record per associate. The user_id unique
// index is what makes the editor's upsert a full replace.
type Schedule struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex;not null"`
	Weekoff1   int       `gorm:"column:weekoff_1;not null"`
	Weekoff2   int       `gorm:"column:weekoff_2;not null"`
	ShiftStart string    `gorm:"column:shift_start;not null"`
	ShiftEnd   string    `gorm:"column:shift_end;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Schedule) TableName() string {
	return "schedules"
}
