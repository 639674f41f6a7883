// file: internals/features/planning/assignments/controller/assignment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/constants"
	userModel "academico_backend/internals/features/people/users/model"
	"academico_backend/internals/features/planning/assignments/dto"
	"academico_backend/internals/features/planning/assignments/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

/* ===============================
   GET /assignments?period_id=&staff_id=
   =============================== */
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TeachingAssignmentModel{})
	if v := strings.TrimSpace(c.Query("period_id")); v != "" {
		q = q.Where("period_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("staff_id")); v != "" {
		q = q.Where("staff_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar las asignaciones")
	}

	var rows []model.TeachingAssignmentModel
	if err := q.Preload("Staff").Preload("Subject").Preload("Period").
		Order("created_at desc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las asignaciones")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   POST /assignments
   La tripleta única vive en la DB; aquí solo se mapea el 23505.
   =============================== */
func (ctl *AssignmentController) Assign(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.TeachingAssignmentModel{
		StaffID:   req.StaffID,
		SubjectID: req.SubjectID,
		PeriodID:  req.PeriodID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El docente ya tiene asignada esa asignatura en el período")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Docente, asignatura o período inexistente")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Asignación creada", row)
}

/* ===============================
   DELETE /assignments/:id
   =============================== */
func (ctl *AssignmentController) Unassign(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.TeachingAssignmentModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignación no encontrada")
	}
	return helper.JsonDeleted(c, "Asignación eliminada", fiber.Map{"id": id})
}

/* ===============================
   GET /assignments/aux-data
   Catálogos para el formulario: asignaturas, docentes, períodos.
   =============================== */
func (ctl *AssignmentController) AuxData(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var out dto.AuxDataResponse

	if err := db.Order("name asc").Find(&out.Subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer las asignaturas")
	}
	var teachers []userModel.UserModel
	if err := db.Where("role = ?", constants.RoleTeacher).
		Order("last_name asc, first_name asc").Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer los docentes")
	}
	out.Staff = make([]dto.StaffOption, 0, len(teachers))
	for _, t := range teachers {
		out.Staff = append(out.Staff, dto.StaffOption{
			ID: t.ID, FirstName: t.FirstName, LastName: t.LastName, Email: t.Email,
		})
	}
	if err := db.Order("name desc").Find(&out.Periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer los períodos")
	}
	return helper.JsonOK(c, "ok", out)
}
