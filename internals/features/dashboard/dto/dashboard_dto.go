// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

import (
	"github.com/google/uuid"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
)

// StatsResponse: conteos globales para las tarjetas del tablero.
type StatsResponse struct {
	Students    int64 `json:"students"`
	Subjects    int64 `json:"subjects"`
	Enrollments int64 `json:"enrollments"`
	Plans       int64 `json:"plans"`
	Reports     int64 `json:"reports"`
	Teachers    int64 `json:"teachers"`
}

// ReportFiltersResponse alimenta los combos del reporte general.
type ReportFiltersResponse struct {
	Periods []periodModel.PeriodModel  `json:"periods"`
	Careers []catalogModel.CareerModel `json:"careers"`
}

// GeneralReportRow: una asignatura del período/carrera con sus números.
type GeneralReportRow struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name"`
	CycleName     string    `json:"cycle_name"`
	EnrolledCount int64     `json:"enrolled_count"`
	PassedCount   int64     `json:"passed_count"`
	FailedCount   int64     `json:"failed_count"`
	PlanCount     int64     `json:"plan_count"`
	ReportCount   int64     `json:"report_count"`
}

type GeneralReportResponse struct {
	PeriodID uuid.UUID          `json:"period_id"`
	CareerID uuid.UUID          `json:"career_id"`
	Rows     []GeneralReportRow `json:"rows"`
}
