// file: internals/features/people/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/people/users/dto"
	"academico_backend/internals/features/people/users/model"
	helper "academico_backend/internals/helpers"
	helperAuth "academico_backend/internals/helpers/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===============================
   GET /users?role=&page=&per_page=
   =============================== */
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los usuarios")
	}

	var rows []model.UserModel
	if err := q.Order("last_name asc, first_name asc").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los usuarios")
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, dto.FromUserModel(u))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET /users/:id
   =============================== */
func (ctl *UserController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var row model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el usuario")
	}
	return helper.JsonOK(c, "ok", dto.FromUserModel(row))
}

/* ===============================
   POST /users  (solo admin)
   El usuario entra con clave temporal y must_change_password=true.
   =============================== */
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la clave")
	}

	row := model.UserModel{
		IDNumber:           req.IDNumber,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Password:           hash,
		Role:               req.Role,
		CareerID:           req.CareerID,
		MustChangePassword: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email ya registrado")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Carrera inexistente")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Usuario creado", dto.FromUserModel(row))
}

/* ===============================
   PUT /users/:id  (solo admin)
   =============================== */
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.UpdateUserRequest
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
	if v := helper.TrimPtr(req.Email); v != nil {
		patch["email"] = strings.ToLower(*v)
	}
	if v := helper.TrimPtr(req.Role); v != nil {
		patch["role"] = strings.ToLower(*v)
	}
	if req.CareerID != nil {
		patch["career_id"] = *req.CareerID
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Email ya registrado")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	var row model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el usuario")
	}
	return helper.JsonUpdated(c, "Usuario actualizado", dto.FromUserModel(row))
}

/* ===============================
   DELETE /users/:id  (solo admin)
   =============================== */
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	// un docente con planes vigentes no se borra (FK RESTRICT en plans)
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "El usuario tiene planificaciones y no puede borrarse")
		}
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonDeleted(c, "Usuario eliminado", fiber.Map{"id": id})
}
