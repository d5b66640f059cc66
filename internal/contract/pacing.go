package contract

import "github.com/alexanderramin/paceboard/internal/app"

type PacingRequest = app.PacingRequest

func NewPacingRequest(schoolYear, classSection string, unit int) PacingRequest {
	return app.NewPacingRequest(schoolYear, classSection, unit)
}

type PacingResponse = app.PacingResponse

type ProgressRequest = app.ProgressRequest

func NewProgressRequest(schoolYear, classSection string, unit int) ProgressRequest {
	return app.NewProgressRequest(schoolYear, classSection, unit)
}

type ActivityCell = app.ActivityCell

type LessonCell = app.LessonCell

type StudentProgress = app.StudentProgress

type ProgressResponse = app.ProgressResponse
