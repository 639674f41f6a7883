// file: internals/features/people/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importDTO "academico_backend/internals/features/academic/imports/dto"
	importModel "academico_backend/internals/features/academic/imports/model"
	enrollModel "academico_backend/internals/features/enrollment/model"
	"academico_backend/internals/features/people/students/dto"
	"academico_backend/internals/features/people/students/model"
	helper "academico_backend/internals/helpers"
	helperAuth "academico_backend/internals/helpers/auth"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===============================
   GET /students?search=&page=&per_page=
   =============================== */
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR id_number LIKE ?", like, like, "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los estudiantes")
	}

	var rows []model.StudentModel
	if err := q.Order("last_name asc, first_name asc").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los estudiantes")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET /students/:id
   ?with=latest_enrollment agrega la matrícula más reciente por fecha
   =============================== */
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el estudiante")
	}

	if c.Query("with") == "latest_enrollment" {
		var latest enrollModel.EnrollmentModel
		err := ctl.DB.WithContext(c.UserContext()).
			Preload("Period").Preload("Cycle").
			Where("student_id = ?", id).
			Order("enrollment_date desc").
			First(&latest).Error
		if err == nil {
			return helper.JsonOK(c, "ok", fiber.Map{"student": row, "latest_enrollment": latest})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la matrícula")
		}
		return helper.JsonOK(c, "ok", fiber.Map{"student": row, "latest_enrollment": nil})
	}
	return helper.JsonOK(c, "ok", row)
}

/* ===============================
   POST /students
   =============================== */
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Cédula o email ya registrados")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Estudiante creado", row)
}

/* ===============================
   PUT /students/:id
   =============================== */
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	patch := map[string]any{"updated_at": gorm.Expr("now()")}
	if v := helper.TrimPtr(req.IDNumber); v != nil {
		patch["id_number"] = *v
	}
	if v := helper.TrimPtr(req.FirstName); v != nil {
		patch["first_name"] = *v
	}
	if v := helper.TrimPtr(req.LastName); v != nil {
		patch["last_name"] = *v
	}
	if req.Email != nil {
		patch["email"] = helper.TrimPtr(req.Email)
	}
	if req.Career != nil {
		patch["career"] = strings.TrimSpace(*req.Career)
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Cédula o email ya registrados")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el estudiante")
	}
	return helper.JsonUpdated(c, "Estudiante actualizado", row)
}

/* ===============================
   DELETE /students/:id
   (cascada: matrículas y sus detalles)
   =============================== */
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.StudentModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
	}
	return helper.JsonDeleted(c, "Estudiante eliminado", fiber.Map{"id": id})
}

/* ===============================
   POST /students/import
   =============================== */
func (ctl *StudentController) Import(c *fiber.Ctx) error {
	var req dto.ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	results := make([]importDTO.RowResult, 0, len(req.Rows))

	for i, r := range req.Rows {
		res := importDTO.RowResult{Row: i}
		row := model.StudentModel{
			IDNumber:  strings.TrimSpace(r.IDNumber),
			FirstName: strings.TrimSpace(r.FirstName),
			LastName:  strings.TrimSpace(r.LastName),
			Email:     helper.TrimPtr(r.Email),
			Career:    strings.TrimSpace(r.Career),
		}
		if err := db.Create(&row).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				res.Error = "cédula o email duplicados"
			} else {
				res.Error = err.Error()
			}
			results = append(results, res)
			continue
		}
		res.OK = true
		res.ID = &row.ID
		results = append(results, res)
	}

	manifest := importDTO.BuildManifest(results)
	ctl.writeImportLog(c, "students", manifest)
	return helper.JsonOK(c, "Import procesado", manifest)
}

func (ctl *StudentController) writeImportLog(c *fiber.Ctx, resource string, m importDTO.ImportManifest) {
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
