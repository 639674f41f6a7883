// file: internals/features/academic/softskills/controller/soft_skill_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academic/softskills/dto"
	"academico_backend/internals/features/academic/softskills/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type SoftSkillController struct {
	DB *gorm.DB
}

func NewSoftSkillController(db *gorm.DB) *SoftSkillController {
	return &SoftSkillController{DB: db}
}

/* ===============================
   GET /soft-skills
   =============================== */
func (ctl *SoftSkillController) List(c *fiber.Ctx) error {
	var rows []model.SoftSkillModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("name asc").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las habilidades")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===============================
   GET /soft-skills/:id  (con actividades)
   =============================== */
func (ctl *SoftSkillController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.SoftSkillModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Habilidad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la habilidad")
	}

	var acts []model.SkillActivityModel
	if err := ctl.DB.WithContext(c.UserContext()).Where("skill_id = ?", id).Order("created_at asc").Find(&acts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer las actividades")
	}
	return helper.JsonOK(c, "ok", dto.FromSoftSkillModel(row, acts))
}

/* ===============================
   POST /soft-skills
   =============================== */
func (ctl *SoftSkillController) Create(c *fiber.Ctx) error {
	var req dto.CreateSoftSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err)
		if status == fiber.StatusConflict {
			msg = "Ya existe una habilidad con ese nombre"
		}
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Habilidad creada", row)
}

/* ===============================
   PUT /soft-skills/:id
   =============================== */
func (ctl *SoftSkillController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdateSoftSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	patch := map[string]any{"updated_at": gorm.Expr("now()")}
	if v := helper.TrimPtr(req.Name); v != nil {
		patch["name"] = *v
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.SoftSkillModel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Habilidad no encontrada")
	}

	var row model.SoftSkillModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la habilidad")
	}
	return helper.JsonUpdated(c, "Habilidad actualizada", row)
}

/* ===============================
   DELETE /soft-skills/:id
   (cascada: actividades y reports de la habilidad)
   =============================== */
func (ctl *SoftSkillController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SoftSkillModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Habilidad no encontrada")
	}
	return helper.JsonDeleted(c, "Habilidad eliminada", fiber.Map{"id": id})
}

/* ===============================
   POST /soft-skills/:id/activities
   =============================== */
func (ctl *SoftSkillController) AddActivity(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.CreateSkillActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.SkillActivityModel{SkillID: id, Description: req.Description}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Habilidad no encontrada")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Actividad agregada", row)
}

/* ===============================
   DELETE /soft-skills/:id/activities/:activity_id
   =============================== */
func (ctl *SoftSkillController) DeleteActivity(c *fiber.Ctx) error {
	skillID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	actID, err := helper.ParseUUIDParam(c, "activity_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "activity_id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.SkillActivityModel{}, "id = ? AND skill_id = ?", actID, skillID)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
	}
	return helper.JsonDeleted(c, "Actividad eliminada", fiber.Map{"id": actID})
}
