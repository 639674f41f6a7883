// file: internals/features/academic/catalogs/controller/catalog_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academic/catalogs/dto"
	"academico_backend/internals/features/academic/catalogs/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

// CatalogController sirve los tres catálogos de referencia bajo un solo
// contrato: get(kind) / create(kind, name). El kind viaja en el path.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// tabla por kind; cualquier otro kind es 404
func (ctl *CatalogController) modelFor(kind string) (any, string) {
	switch kind {
	case "careers":
		return &[]model.CareerModel{}, "careers"
	case "cycles":
		return &[]model.CycleModel{}, "cycles"
	case "curricular-units":
		return &[]model.CurricularUnitModel{}, "curricular_units"
	}
	return nil, ""
}

/* ===============================
   GET /catalogs/:kind
   =============================== */
func (ctl *CatalogController) List(c *fiber.Ctx) error {
	dest, table := ctl.modelFor(c.Params("kind"))
	if dest == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Catálogo desconocido")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Table(table).Order("name asc").Find(dest).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar el catálogo")
	}
	return helper.JsonOK(c, "ok", dest)
}

/* ===============================
   POST /catalogs/:kind
   =============================== */
func (ctl *CatalogController) Create(c *fiber.Ctx) error {
	_, table := ctl.modelFor(c.Params("kind"))
	if table == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Catálogo desconocido")
	}

	var req dto.CreateCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pre-check asesor; el índice único decide bajo concurrencia
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Table(table).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el nombre")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe una entrada con ese nombre")
	}

	row := map[string]any{"name": req.Name}
	if err := ctl.DB.WithContext(c.UserContext()).Table(table).Create(row).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}

	var out dto.CatalogResponse
	if err := ctl.DB.WithContext(c.UserContext()).Table(table).Where("name = ?", req.Name).Take(&out).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la fila creada")
	}
	return helper.JsonCreated(c, "Catálogo creado", out)
}

/* ===============================
   PUT /catalogs/:kind/:id
   =============================== */
func (ctl *CatalogController) Update(c *fiber.Ctx) error {
	_, table := ctl.modelFor(c.Params("kind"))
	if table == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Catálogo desconocido")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdateCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).Table(table).Where("id = ?", id).
		Updates(map[string]any{"name": req.Name, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrada no encontrada")
	}

	var out dto.CatalogResponse
	if err := ctl.DB.WithContext(c.UserContext()).Table(table).Where("id = ?", id).Take(&out).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la fila")
	}
	return helper.JsonUpdated(c, "Catálogo actualizado", out)
}

/* ===============================
   DELETE /catalogs/:kind/:id
   =============================== */
func (ctl *CatalogController) Delete(c *fiber.Ctx) error {
	_, table := ctl.modelFor(c.Params("kind"))
	if table == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Catálogo desconocido")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			// catálogo referenciado por asignaturas/matrículas: se restringe
			return helper.JsonError(c, fiber.StatusConflict, "El catálogo está en uso y no puede borrarse")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrada no encontrada")
	}
	return helper.JsonDeleted(c, "Catálogo eliminado", fiber.Map{"id": id})
}

// LookupByName resuelve nombre→id dentro de un kind; lo usan los imports.
func LookupByName(db *gorm.DB, table, name string) (string, error) {
	var id string
	err := db.Table(table).Select("id").Where("lower(name) = lower(?)", name).Take(&id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", gorm.ErrRecordNotFound
	}
	return id, err
}
