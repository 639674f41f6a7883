// file: internals/features/planning/reports/dto/report_dto.go
package dto

import "github.com/google/uuid"

/* ===============================
   Requests
   =============================== */

type GenerateReportRequest struct {
	PlanID             uuid.UUID `json:"plan_id" validate:"required"`
	SkillID            uuid.UUID `json:"skill_id" validate:"required"`
	ProgressConclusion string    `json:"progress_conclusion" validate:"required,min=3"`
}

type ConclusionInput struct {
	ReportID        uuid.UUID `json:"report_id" validate:"required"`
	CoordinatorNote string    `json:"coordinator_note" validate:"required,min=3"`
}

// BulkConclusionsRequest: cada fila se guarda por separado, una fila mala
// no tumba el lote.
type BulkConclusionsRequest struct {
	Conclusions []ConclusionInput `json:"conclusions" validate:"required,min=1,dive"`
}

/* ===============================
   Responses
   =============================== */

type ConclusionRowResult struct {
	ReportID uuid.UUID `json:"report_id"`
	OK       bool      `json:"ok"`
	Error    string    `json:"error,omitempty"`
}

type BulkConclusionsResult struct {
	Total   int                   `json:"total"`
	Saved   int                   `json:"saved"`
	Failed  int                   `json:"failed"`
	Results []ConclusionRowResult `json:"results"`
}

// PdfSkillBlock: una habilidad del plan con sus actividades y conclusión.
type PdfSkillBlock struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	ActivitiesText  string    `json:"activities_text"`
	LearningOutcome string    `json:"learning_outcome"`
	Conclusion      *string   `json:"conclusion,omitempty"`
	CoordinatorNote *string   `json:"coordinator_note,omitempty"`
}

// PdfData: payload plano que consume el renderizador externo del PDF.
type PdfData struct {
	PlanID      uuid.UUID       `json:"plan_id"`
	SubjectName string          `json:"subject_name"`
	CareerName  string          `json:"career_name"`
	CycleName   string          `json:"cycle_name"`
	TeacherName string          `json:"teacher_name"`
	Term        string          `json:"term"`
	PeriodLabel string          `json:"period_label"`
	Section     string          `json:"section"`
	Skills      []PdfSkillBlock `json:"skills"`
}
