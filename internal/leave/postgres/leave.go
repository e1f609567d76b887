package postgres

import (
	"time"

	leaveDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leave"
	"github.com/frahmantamala/shift-roster/internal/leave"
	"gorm.io/gorm"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(l *leave.Leave) error {
	row := leave.ToDataModel(l)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	l.ID = row.ID
	return nil
}

func (r *LeaveRepository) GetByID(id int64) (*leave.Leave, error) {
	var row leaveDatamodel.Leave
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return leave.FromDataModel(&row), nil
}

func (r *LeaveRepository) GetByUserID(userID int64, limit, offset int) ([]*leave.Leave, error) {
	var rows []*leaveDatamodel.Leave
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(rows), nil
}

// GetForManager lists leaves owned by the manager's linked associates,
// with each owner's name joined in for display.
func (r *LeaveRepository) GetForManager(managerID int64, limit, offset int) ([]*leave.Leave, error) {
	type leaveWithOwner struct {
		leaveDatamodel.Leave
		OwnerName string
	}

	var rows []*leaveWithOwner
	err := r.db.
		Table("leaves").
		Select("leaves.*, users.full_name AS owner_name").
		Joins("JOIN users ON users.id = leaves.user_id").
		Where("users.manager_id = ?", managerID).
		Order("leaves.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*leave.Leave, len(rows))
	for i, row := range rows {
		l := leave.FromDataModel(&row.Leave)
		l.OwnerName = row.OwnerName
		result[i] = l
	}
	return result, nil
}

func (r *LeaveRepository) GetByUserIDIntersecting(userID int64, from, to time.Time) ([]*leave.Leave, error) {
	var rows []*leaveDatamodel.Leave
	err := r.db.
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, to, from).
		Order("start_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(rows), nil
}

func (r *LeaveRepository) GetOwnerManagerID(ownerID int64) (*int64, error) {
	var row struct {
		ManagerID *int64
	}
	err := r.db.
		Table("users").
		Select("manager_id").
		Where("id = ?", ownerID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.ManagerID, nil
}

func (r *LeaveRepository) UpdateStatus(id int64, status string, processedBy int64, processedAt time.Time) error {
	return r.db.
		Model(&leaveDatamodel.Leave{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_by": processedBy,
			"processed_at": processedAt,
			"updated_at":   processedAt,
		}).Error
}
