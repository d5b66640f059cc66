package app

import (
	"time"

	"github.com/alexanderramin/paceboard/internal/pacing"
)

type PacingRequest struct {
	Scope
	// Now overrides the evaluation date.
	Now        *time.Time
	MinZonePct float64
}

func NewPacingRequest(schoolYear, classSection string, unit int) PacingRequest {
	return PacingRequest{
		Scope:      Scope{SchoolYear: schoolYear, ClassSection: classSection, UnitNumber: unit},
		MinZonePct: pacing.DefaultMinZonePct,
	}
}

type PacingResponse struct {
	Scope    Scope
	School   string
	UnitName string
	Today    time.Time
	Result   pacing.Result
	Layout   []pacing.ZoneWidth
	// Warnings are data-quality notes; they never fail the request.
	Warnings []string
}
