package postgres

import (
	leavetypeDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/shift-roster/internal/leavetype"
	"gorm.io/gorm"
)

type LeaveTypeRepository struct {
	db *gorm.DB
}

func NewLeaveTypeRepository(db *gorm.DB) leavetype.RepositoryAPI {
	return &LeaveTypeRepository{db: db}
}

func (r *LeaveTypeRepository) GetAll() ([]*leavetypeDatamodel.LeaveType, error) {
	var rows []*leavetypeDatamodel.LeaveType
	err := r.db.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *LeaveTypeRepository) GetByName(name string) (*leavetypeDatamodel.LeaveType, error) {
	var row leavetypeDatamodel.LeaveType
	err := r.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *LeaveTypeRepository) Create(row *leavetypeDatamodel.LeaveType) error {
	return r.db.Create(row).Error
}
