// file: internals/features/enrollment/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/enrollment/dto"
	"academico_backend/internals/features/enrollment/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* ===============================
   POST /enrollments
   Una matrícula por estudiante por período. El pre-check avisa temprano;
   bajo carrera de requests decide el índice único.
   =============================== */
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	// pre-check asesor
	var count int64
	if err := db.Model(&model.EnrollmentModel{}).
		Where("student_id = ? AND period_id = ?", req.StudentID, req.PeriodID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar la matrícula")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El estudiante ya está matriculado en este período")
	}

	row := req.ToModel()
	if err := db.Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El estudiante ya está matriculado en este período")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Estudiante, período o ciclo inexistente")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Matrícula creada", row)
}

/* ===============================
   GET /enrollments/:id  (con detalles)
   =============================== */
func (ctl *EnrollmentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Period").Preload("Cycle").
		Preload("Details").Preload("Details.Subject").
		First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Matrícula no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la matrícula")
	}
	return helper.JsonOK(c, "ok", row)
}

/* ===============================
   GET /enrollments?period_id=
   Vista plana matrícula × detalle para el reporte del período.
   =============================== */
func (ctl *EnrollmentController) ListByPeriod(c *fiber.Ctx) error {
	periodID := c.Query("period_id")
	if periodID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id es obligatorio")
	}

	var rows []dto.EnrollmentByPeriodRow
	err := ctl.DB.WithContext(c.UserContext()).
		Table("enrollments e").
		Select(`e.id AS enrollment_id,
			e.student_id,
			st.last_name || ' ' || st.first_name AS student_name,
			st.id_number AS student_number,
			cy.name AS cycle_name,
			e.section,
			e.enrollment_date,
			d.subject_id,
			su.name AS subject_name,
			d.status AS detail_status,
			d.final_grade`).
		Joins("JOIN students st ON st.id = e.student_id").
		Joins("JOIN cycles cy ON cy.id = e.cycle_id").
		Joins("LEFT JOIN enrollment_details d ON d.enrollment_id = e.id").
		Joins("LEFT JOIN subjects su ON su.id = d.subject_id").
		Where("e.period_id = ?", periodID).
		Order("student_name asc, subject_name asc").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las matrículas")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===============================
   POST /enrollments/:id/details
   =============================== */
func (ctl *EnrollmentController) AddDetail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.AddDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var enr model.EnrollmentModel
	if err := db.First(&enr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Matrícula no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la matrícula")
	}

	section := enr.Section
	if v := helper.TrimPtr(req.Section); v != nil {
		section = *v
	}

	detail := model.EnrollmentDetailModel{
		EnrollmentID: enr.ID,
		SubjectID:    req.SubjectID,
		Status:       model.DetailStatusInProgress,
		Section:      section,
	}
	if err := db.Create(&detail).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "La asignatura ya está en la matrícula")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Asignatura inexistente")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Detalle agregado", detail)
}

/* ===============================
   PUT /enrollments/details/:detail_id/grade
   Rango 0.00–10.00; >=7 aprueba, bajo 7 reprueba.
   =============================== */
func (ctl *EnrollmentController) SetGrade(c *fiber.Ctx) error {
	detailID, err := helper.ParseUUIDParam(c, "detail_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "detail_id inválido")
	}

	var req dto.SetGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if req.Grade < model.GradeMin || req.Grade > model.GradeMax {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nota fuera de rango (0.00–10.00)")
	}

	status := model.DetailStatusFailed
	if req.Grade >= model.PassingGrade {
		status = model.DetailStatusPassed
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.EnrollmentDetailModel{}).
		Where("id = ?", detailID).
		Updates(map[string]any{
			"final_grade": req.Grade,
			"status":      status,
			"updated_at":  gorm.Expr("now()"),
		})
	if res.Error != nil {
		st, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, st, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Detalle no encontrado")
	}

	var detail model.EnrollmentDetailModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&detail, "id = ?", detailID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el detalle")
	}
	return helper.JsonUpdated(c, "Nota registrada", detail)
}

/* ===============================
   DELETE /enrollments/:id
   La DB borra los detalles en cascada.
   =============================== */
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EnrollmentModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Matrícula no encontrada")
	}
	return helper.JsonDeleted(c, "Matrícula eliminada", fiber.Map{"id": id})
}
