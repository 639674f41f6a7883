package helperAuth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Keys usadas en c.Locals por el middleware AuthJWT.
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocCareerID = "career_id"
)

/* =========================
   Claims desde Locals
   ========================= */

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin user_id válido")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocRole).(string)
	return strings.ToLower(strings.TrimSpace(v))
}

func HasRole(c *fiber.Ctx, roles ...string) bool {
	actual := GetRole(c)
	for _, r := range roles {
		if actual == strings.ToLower(r) {
			return true
		}
	}
	return false
}

// GetCareerID devuelve el career del token (scope opcional de coordinador).
func GetCareerID(c *fiber.Ctx) *uuid.UUID {
	v, _ := c.Locals(LocCareerID).(string)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

/* =========================
   Token mint
   ========================= */

type AccessClaims struct {
	Role     string     `json:"role"`
	CareerID *uuid.UUID `json:"career_id,omitempty"`
	jwt.RegisteredClaims
}

func CreateAccessToken(secret string, userID uuid.UUID, role string, careerID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role:     role,
		CareerID: careerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

/* =========================
   Passwords
   ========================= */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
