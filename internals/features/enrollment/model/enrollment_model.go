// file: internals/features/enrollment/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	studentModel "academico_backend/internals/features/people/students/model"
)

const (
	DetailStatusInProgress = "in-progress"
	DetailStatusPassed     = "passed"
	DetailStatusFailed     = "failed"
)

// Nota aprobatoria del reglamento vigente (escala 0.00–10.00).
const (
	GradeMin     = 0.0
	GradeMax     = 10.0
	PassingGrade = 7.0
)

// EnrollmentModel es la matrícula: raíz del agregado, dueña exclusiva de
// sus detalles. (student_id, period_id) único: una matrícula por alumno
// por período, garantizado por la DB.
type EnrollmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_period;index;column:student_id" json:"student_id"`
	PeriodID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_period;index;column:period_id" json:"period_id"`
	CycleID        uuid.UUID `gorm:"type:uuid;not null;column:cycle_id" json:"cycle_id"`
	Section        string    `gorm:"type:varchar(10);not null;column:section" json:"section"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';column:status" json:"status"`
	EnrollmentDate time.Time `gorm:"type:timestamptz;not null;default:now();column:enrollment_date" json:"enrollment_date"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Period  *periodModel.PeriodModel   `gorm:"foreignKey:PeriodID;constraint:OnDelete:RESTRICT" json:"period,omitempty"`
	Cycle   *catalogModel.CycleModel   `gorm:"foreignKey:CycleID;constraint:OnDelete:RESTRICT" json:"cycle,omitempty"`

	Details []EnrollmentDetailModel `gorm:"foreignKey:EnrollmentID" json:"details,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

// EnrollmentDetailModel: una asignatura dentro de la matrícula. Se borra
// en cascada con su matrícula.
type EnrollmentDetailModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_details_subject;index;column:enrollment_id" json:"enrollment_id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_details_subject;index;column:subject_id" json:"subject_id"`
	// in-progress | passed | failed
	Status     string   `gorm:"type:varchar(20);not null;default:'in-progress';column:status" json:"status"`
	FinalGrade *float64 `gorm:"type:numeric(4,2);column:final_grade" json:"final_grade,omitempty"`
	Section    string   `gorm:"type:varchar(10);not null;column:section" json:"section"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Enrollment *EnrollmentModel          `gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE" json:"-"`
	Subject    *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:RESTRICT" json:"subject,omitempty"`
}

func (EnrollmentDetailModel) TableName() string { return "enrollment_details" }
