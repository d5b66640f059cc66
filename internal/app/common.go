package app

import "fmt"

// Scope selects one class section's unit for one school year.
type Scope struct {
	SchoolYear   string
	ClassSection string
	UnitNumber   int
}

func (s Scope) String() string {
	return fmt.Sprintf("%s unit %d (%s)", s.ClassSection, s.UnitNumber, s.SchoolYear)
}

type PacingErrorCode string

const (
	PacingErrInvalidUnit  PacingErrorCode = "INVALID_UNIT"
	PacingErrInvalidDate  PacingErrorCode = "INVALID_DATE"
	PacingErrUnknownClass PacingErrorCode = "UNKNOWN_CLASS"
)

// PacingError reports a request the services refuse to evaluate.
type PacingError struct {
	Code    PacingErrorCode
	Message string
}

func (e *PacingError) Error() string {
	return string(e.Code) + ": " + e.Message
}
