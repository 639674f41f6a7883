// file: internals/features/planning/assignments/model/teaching_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	periodModel "academico_backend/internals/features/academic/periods/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	userModel "academico_backend/internals/features/people/users/model"
)

// TeachingAssignmentModel vincula docente↔asignatura↔período. El índice
// único sobre la tripleta evita asignaciones activas duplicadas (mejora
// sobre el chequeo solo-aplicativo del sistema anterior).
type TeachingAssignmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teaching_assignments_triplet;index;column:staff_id" json:"staff_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teaching_assignments_triplet;index;column:subject_id" json:"subject_id"`
	PeriodID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teaching_assignments_triplet;index;column:period_id" json:"period_id"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Staff   *userModel.UserModel       `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	Period  *periodModel.PeriodModel   `gorm:"foreignKey:PeriodID;constraint:OnDelete:CASCADE" json:"period,omitempty"`
}

func (TeachingAssignmentModel) TableName() string { return "teaching_assignments" }
