package schedule

import (
	errors "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/core/common/validation"
)

type UpsertScheduleDTO struct {
	Weekoff1   *int   `json:"weekoff_1"`
	Weekoff2   *int   `json:"weekoff_2"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
}

func (dto UpsertScheduleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("shift_start", dto.ShiftStart).Required().TimeOfDay()
	v.Field("shift_end", dto.ShiftEnd).Required().TimeOfDay()
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}

	if dto.Weekoff1 == nil || dto.Weekoff2 == nil {
		return errors.NewValidationError("weekoff_1 and weekoff_2 are required", errors.ErrCodeInvalidWeekday)
	}
	if *dto.Weekoff1 < 0 || *dto.Weekoff1 > 6 {
		return errors.NewValidationFieldError("weekoff_1", "weekday must be between 0 and 6", errors.ErrCodeInvalidWeekday)
	}
	if *dto.Weekoff2 < 0 || *dto.Weekoff2 > 6 {
		return errors.NewValidationFieldError("weekoff_2", "weekday must be between 0 and 6", errors.ErrCodeInvalidWeekday)
	}
	if *dto.Weekoff1 == *dto.Weekoff2 {
		return errors.NewValidationError("week-off days must be distinct", errors.ErrCodeInvalidWeekday)
	}

	return nil
}
