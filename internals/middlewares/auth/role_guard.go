package middleware

import (
	"github.com/gofiber/fiber/v2"

	"academico_backend/internals/constants"
	helperAuth "academico_backend/internals/helpers/auth"
)

// RequireRoles corta con 403 si el rol del token no está en la lista.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, roles...) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}

func IsAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, constants.AdminOnly...) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}

func IsCoordinator(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, constants.CoordinatorAndAbove...) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCoordinator(feature))
	}
}

func IsTeacher(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, constants.TeacherAndAbove...) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
	}
}
