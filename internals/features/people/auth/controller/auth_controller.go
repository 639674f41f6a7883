// file: internals/features/people/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/configs"
	userDTO "academico_backend/internals/features/people/users/dto"
	userModel "academico_backend/internals/features/people/users/model"
	helper "academico_backend/internals/helpers"
	helperAuth "academico_backend/internals/helpers/auth"
)

var validate = validator.New()

const accessTokenTTL = 8 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===============================
   POST /login
   =============================== */
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje que clave incorrecta: no filtrar existencia
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el login")
	}
	if !helperAuth.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := helperAuth.CreateAccessToken(configs.JWTSecret, user.ID, user.Role, user.CareerID, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Login correcto", userDTO.LoginResponse{
		AccessToken:        token,
		MustChangePassword: user.MustChangePassword,
		User:               userDTO.FromUserModel(user),
	})
}

/* ===============================
   GET /me
   =============================== */
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el usuario")
	}
	return helper.JsonOK(c, "ok", userDTO.FromUserModel(user))
}

/* ===============================
   POST /change-password
   Limpia must_change_password al éxito.
   =============================== */
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req userDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el usuario")
	}
	if !helperAuth.CheckPassword(user.Password, req.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Clave actual incorrecta")
	}

	hash, err := helperAuth.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la clave")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password":             hash,
			"must_change_password": false,
			"updated_at":           gorm.Expr("now()"),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la clave")
	}
	return helper.JsonUpdated(c, "Clave actualizada", fiber.Map{"must_change_password": false})
}
