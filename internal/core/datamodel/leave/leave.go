package leave

import "time"

type Leave struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      int64      `gorm:"column:user_id;index;not null"`
	LeaveType   string     `gorm:"column:leave_type;not null"`
	StartDate   time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time  `gorm:"column:end_date;type:date;not null"`
	Status      string     `gorm:"column:status;default:pending"`
	Comment     *string    `gorm:"column:comment"`
	ProcessedBy *int64     `gorm:"column:processed_by"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Leave) TableName() string {
	return "leaves"
}
