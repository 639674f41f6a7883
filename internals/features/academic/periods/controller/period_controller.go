// file: internals/features/academic/periods/controller/period_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academic/periods/dto"
	"academico_backend/internals/features/academic/periods/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type PeriodController struct {
	DB *gorm.DB
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{DB: db}
}

/* ===============================
   GET /periods
   =============================== */
func (ctl *PeriodController) List(c *fiber.Ctx) error {
	var rows []model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("name desc").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los períodos")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===============================
   GET /periods/active
   =============================== */
func (ctl *PeriodController) Active(c *fiber.Ctx) error {
	var row model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "active = true").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No hay período activo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el período activo")
	}
	return helper.JsonOK(c, "ok", row)
}

/* ===============================
   POST /periods
   =============================== */
func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if row.Active {
			// un solo período activo a la vez
			if err := tx.Model(&model.PeriodModel{}).Where("active = true").Update("active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		status, msg := helper.MapPGError(err)
		if status == fiber.StatusConflict {
			msg = "Ya existe un período con ese nombre"
		}
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Período creado", row)
}

/* ===============================
   PUT /periods/:id
   (activar un período desactiva el resto)
   =============================== */
func (ctl *PeriodController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if req.Active != nil && *req.Active {
			if err := tx.Model(&model.PeriodModel{}).Where("active = true AND id <> ?", id).Update("active", false).Error; err != nil {
				return err
			}
		}
		patch := map[string]any{"updated_at": gorm.Expr("now()")}
		if v := helper.TrimPtr(req.Name); v != nil {
			patch["name"] = *v
		}
		if req.Active != nil {
			patch["active"] = *req.Active
		}
		res := tx.Model(&model.PeriodModel{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Período no encontrado")
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		status, msg := helper.MapPGError(txErr)
		return helper.JsonError(c, status, msg)
	}

	var row model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el período")
	}
	return helper.JsonUpdated(c, "Período actualizado", row)
}

/* ===============================
   DELETE /periods/:id
   =============================== */
func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.PeriodModel{}, "id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "El período tiene matrículas y no puede borrarse")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Período no encontrado")
	}
	return helper.JsonDeleted(c, "Período eliminado", fiber.Map{"id": id})
}
