package contract

import "github.com/alexanderramin/paceboard/internal/app"

type Scope = app.Scope

type PacingErrorCode = app.PacingErrorCode

const (
	PacingErrInvalidUnit  PacingErrorCode = app.PacingErrInvalidUnit
	PacingErrInvalidDate  PacingErrorCode = app.PacingErrInvalidDate
	PacingErrUnknownClass PacingErrorCode = app.PacingErrUnknownClass
)

type PacingError = app.PacingError

type ImportResult = app.ImportResult

type ScheduleView = app.ScheduleView
