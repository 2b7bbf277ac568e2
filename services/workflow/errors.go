// File: services/workflow/errors.go
package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftNotFound means the draft id does not exist or has expired.
	ErrDraftNotFound = errors.New("booking draft not found")

	// ErrStageOrder means a stage was attempted before its prerequisite
	// stage was filled.
	ErrStageOrder = errors.New("booking stages must be completed in order")

	// ErrDoctorNotOffered means the chosen doctor was not among the doctors
	// listed for the chosen specialization.
	ErrDoctorNotOffered = errors.New("doctor is not available for the chosen specialization")

	// ErrDateNotAvailable means the chosen date is not one of the doctor's
	// open dates.
	ErrDateNotAvailable = errors.New("selected date is not available for this doctor")

	// ErrTimeNotAvailable means the chosen time is not one of the open
	// slots on the selected date.
	ErrTimeNotAvailable = errors.New("selected time is not available on this date")
)

// MissingFieldsError reports an attempted submit with unfilled stages.
// Nothing is sent to the booking backend when this is returned.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("booking draft incomplete, missing: %v", e.Fields)
}

// Notice is a non-error outcome worth surfacing: the stage succeeded but
// the backend returned nothing to choose from.
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	noticeNoDoctors = &Notice{
		Code:    "NO_DOCTORS",
		Message: "No doctors found for this specialization.",
	}
	noticeNoDates = &Notice{
		Code:    "NO_AVAILABLE_DATES",
		Message: "This doctor has no available dates.",
	}
	noticeNoSlots = &Notice{
		Code:    "NO_AVAILABLE_TIMES",
		Message: "No free time slots on the selected date.",
	}
)
