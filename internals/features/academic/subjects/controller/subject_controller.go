// file: internals/features/academic/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogController "academico_backend/internals/features/academic/catalogs/controller"
	importDTO "academico_backend/internals/features/academic/imports/dto"
	importModel "academico_backend/internals/features/academic/imports/model"
	"academico_backend/internals/features/academic/subjects/dto"
	"academico_backend/internals/features/academic/subjects/model"
	helper "academico_backend/internals/helpers"
	helperAuth "academico_backend/internals/helpers/auth"

	"github.com/bytedance/sonic"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

/* ===============================
   GET /subjects?career_id=&cycle_id=&page=&per_page=
   =============================== */
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})
	if v := strings.TrimSpace(c.Query("career_id")); v != "" {
		q = q.Where("career_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("cycle_id")); v != "" {
		q = q.Where("cycle_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar las asignaturas")
	}

	var rows []model.SubjectModel
	if err := q.Preload("Career").Preload("Cycle").Preload("Unit").
		Order("name asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las asignaturas")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET /subjects/:id
   =============================== */
func (ctl *SubjectController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Career").Preload("Cycle").Preload("Unit").
		First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asignatura no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la asignatura")
	}
	return helper.JsonOK(c, "ok", row)
}

/* ===============================
   POST /subjects
   =============================== */
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Carrera, ciclo o unidad inexistente")
		}
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe esa asignatura en la carrera")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Asignatura creada", row)
}

/* ===============================
   PUT /subjects/:id
   =============================== */
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdateSubjectRequest
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
	if req.CareerID != nil {
		patch["career_id"] = *req.CareerID
	}
	if req.CycleID != nil {
		patch["cycle_id"] = *req.CycleID
	}
	if req.UnitID != nil {
		patch["unit_id"] = *req.UnitID
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe esa asignatura en la carrera")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignatura no encontrada")
	}

	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la asignatura")
	}
	return helper.JsonUpdated(c, "Asignatura actualizada", row)
}

/* ===============================
   DELETE /subjects/:id
   =============================== */
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "La asignatura tiene matrículas y no puede borrarse")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignatura no encontrada")
	}
	return helper.JsonDeleted(c, "Asignatura eliminada", fiber.Map{"id": id})
}

/* ===============================
   POST /subjects/import
   Cada fila es una unidad de trabajo independiente: las que no resuelven
   catálogo se reportan y el lote sigue.
   =============================== */
func (ctl *SubjectController) Import(c *fiber.Ctx) error {
	var req dto.ImportSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	results := make([]importDTO.RowResult, 0, len(req.Rows))

	for i, row := range req.Rows {
		res := importDTO.RowResult{Row: i}

		careerID, err := catalogController.LookupByName(db, "careers", strings.TrimSpace(row.Career))
		if err != nil {
			res.Error = "carrera no encontrada: " + row.Career
			results = append(results, res)
			continue
		}
		cycleID, err := catalogController.LookupByName(db, "cycles", strings.TrimSpace(row.Cycle))
		if err != nil {
			res.Error = "ciclo no encontrado: " + row.Cycle
			results = append(results, res)
			continue
		}
		unitID, err := catalogController.LookupByName(db, "curricular_units", strings.TrimSpace(row.Unit))
		if err != nil {
			res.Error = "unidad no encontrada: " + row.Unit
			results = append(results, res)
			continue
		}

		subject := model.SubjectModel{
			Name:     strings.TrimSpace(row.Name),
			CareerID: uuid.MustParse(careerID),
			CycleID:  uuid.MustParse(cycleID),
			UnitID:   uuid.MustParse(unitID),
		}
		if err := db.Create(&subject).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				res.Error = "asignatura duplicada en la carrera"
			} else {
				res.Error = err.Error()
			}
			results = append(results, res)
			continue
		}
		res.OK = true
		res.ID = &subject.ID
		results = append(results, res)
	}

	manifest := importDTO.BuildManifest(results)
	ctl.writeImportLog(c, "subjects", manifest)
	return helper.JsonOK(c, "Import procesado", manifest)
}

// writeImportLog persiste el manifiesto para auditoría; best-effort.
func (ctl *SubjectController) writeImportLog(c *fiber.Ctx, resource string, m importDTO.ImportManifest) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return
	}
	raw, err := sonic.Marshal(m.Rows)
	if err != nil {
		return
	}
	_ = ctl.DB.WithContext(c.UserContext()).Create(&importModel.ImportLogModel{
		Resource: resource,
		UserID:   userID,
		RowCount: m.Total,
		OkCount:  m.OkCount,
		Manifest: raw,
	}).Error
}
