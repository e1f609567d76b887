package leave

import (
	"time"

	errors "github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/core/common/validation"
)

const dateLayout = "2006-01-02"

// CreateLeaveDTO is the submit payload. Dates are inclusive calendar dates.
type CreateLeaveDTO struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Comment   *string `json:"comment,omitempty"`
}

// Validate checks shape only; leave type membership is the service's call
// because it needs the leave type store.
func (dto CreateLeaveDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("leave_type", dto.LeaveType).Required()
	v.Field("start_date", dto.StartDate).Required().CalendarDate()
	v.Field("end_date", dto.EndDate).Required().CalendarDate()
	if dto.Comment != nil {
		v.Field("comment", *dto.Comment).MaxLen(500)
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}

	start, _ := time.Parse(dateLayout, dto.StartDate)
	end, _ := time.Parse(dateLayout, dto.EndDate)
	if end.Before(start) {
		return errors.NewValidationFieldError("end_date", "end_date must not be before start_date", errors.ErrCodeInvalidDateRange)
	}

	return nil
}

func (dto CreateLeaveDTO) Dates() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, dto.StartDate)
	end, _ = time.Parse(dateLayout, dto.EndDate)
	return start, end
}
