// file: internals/features/planning/plans/controller/plan_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/planning/plans/dto"
	"academico_backend/internals/features/planning/plans/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

/* ===============================
   GET /plans?subject_id=&teacher_id=&period_label=
   =============================== */
func (ctl *PlanController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.PlanModel{})
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		q = q.Where("subject_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		q = q.Where("teacher_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("period_label")); v != "" {
		q = q.Where("period_label = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los planes")
	}

	var rows []model.PlanModel
	if err := q.Preload("Subject").Preload("Teacher").
		Order("created_at desc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los planes")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET /plans/:id  (con detalles y habilidades)
   =============================== */
func (ctl *PlanController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.PlanModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Subject").Preload("Teacher").
		Preload("Details").Preload("Details.Skill").
		First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el plan")
	}
	return helper.JsonOK(c, "ok", row)
}

/* ===============================
   POST /plans
   Plan + detalles iniciales en una transacción. El duplicado lo decide el
   índice único compuesto; el verificar del front es solo un pre-check.
   =============================== */
func (ctl *PlanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, d := range req.Details {
			detail := model.PlanDetailModel{
				PlanID:          row.ID,
				SkillID:         d.SkillID,
				ActivitiesText:  strings.TrimSpace(d.ActivitiesText),
				LearningOutcome: strings.TrimSpace(d.LearningOutcome),
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if helper.IsDuplicateKey(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un plan para esa asignatura/parcial/período/paralelo")
		}
		if helper.IsForeignKeyViolation(txErr) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Asignatura, docente o habilidad inexistente")
		}
		status, msg := helper.MapPGError(txErr)
		return helper.JsonError(c, status, msg)
	}

	var created model.PlanModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Details").First(&created, "id = ?", row.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el plan creado")
	}
	return helper.JsonCreated(c, "Plan creado", created)
}

/* ===============================
   POST /plans/:id/details
   Un plan lleva muchas habilidades (uno-a-muchos).
   =============================== */
func (ctl *PlanController) AddDetail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.AddPlanDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	detail := model.PlanDetailModel{
		PlanID:          id,
		SkillID:         req.SkillID,
		ActivitiesText:  strings.TrimSpace(req.ActivitiesText),
		LearningOutcome: strings.TrimSpace(req.LearningOutcome),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&detail).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Plan o habilidad inexistente")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Detalle agregado", detail)
}

/* ===============================
   GET /planificaciones/verificar/:subject_id?term=&period_label=&section=
   Pre-check para que el front bloquee el envío duplicado. No sustituye al
   constraint: dos requests simultáneos los resuelve la DB.
   =============================== */
func (ctl *PlanController) Verify(c *fiber.Ctx) error {
	subjectID, err := helper.ParseUUIDParam(c, "subject_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id inválido")
	}
	term, err := strconv.Atoi(strings.TrimSpace(c.Query("term")))
	if err != nil || (term != 1 && term != 2) {
		return helper.JsonError(c, fiber.StatusBadRequest, "term debe ser 1 o 2")
	}
	periodLabel := strings.TrimSpace(c.Query("period_label"))
	section := strings.ToUpper(strings.TrimSpace(c.Query("section")))
	if periodLabel == "" || section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_label y section son obligatorios")
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.PlanModel{}).
		Where("subject_id = ? AND term = ? AND period_label = ? AND section = ?",
			subjectID, term, periodLabel, section).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el plan")
	}
	return helper.JsonOK(c, "ok", dto.VerifyPlanResponse{Exists: count > 0})
}

/* ===============================
   DELETE /plans/:id
   La DB borra detalles y reports en cascada.
   =============================== */
func (ctl *PlanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.PlanModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
	}
	return helper.JsonDeleted(c, "Plan eliminado", fiber.Map{"id": id})
}
