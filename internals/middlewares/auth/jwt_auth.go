package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "academico_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // usa la cookie access_token si no hay Bearer
}

// AuthJWT valida el bearer token y llena los Locals que esperan los
// helpers (user_id, role, career_id).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret es obligatorio")
	}

	return func(c *fiber.Ctx) error {
		// 1) token: Authorization: Bearer xxx (o cookie si se permite)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) parse + verificación de algoritmo
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// === hidratar Locals ===
		if sub := strClaim(claims, "sub"); sub != "" {
			c.Locals(helperAuth.LocUserID, sub)
		} else if uid := strClaim(claims, "user_id"); uid != "" {
			c.Locals(helperAuth.LocUserID, uid)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(helperAuth.LocRole, strings.ToLower(role))
		}
		if cid := strClaim(claims, "career_id"); cid != "" {
			c.Locals(helperAuth.LocCareerID, cid)
		}

		if c.Locals(helperAuth.LocUserID) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin sujeto")
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
