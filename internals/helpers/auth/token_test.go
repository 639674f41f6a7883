// file: internals/helpers/auth/token_test.go
package helperAuth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secreta.123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Secreta.123" {
		t.Fatal("el hash no puede ser el texto plano")
	}
	if !CheckPassword(hash, "Secreta.123") {
		t.Fatal("la contraseña correcta no validó")
	}
	if CheckPassword(hash, "otra") {
		t.Fatal("una contraseña incorrecta validó")
	}
}

func TestCreateAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	careerID := uuid.New()

	raw, err := CreateAccessToken("test-secret", userID, "coordinator", &careerID, time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	var claims AccessClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token inválido: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("sub = %q, quería %q", claims.Subject, userID)
	}
	if claims.Role != "coordinator" {
		t.Fatalf("role = %q", claims.Role)
	}
	if claims.CareerID == nil || *claims.CareerID != careerID {
		t.Fatalf("career_id = %v, quería %s", claims.CareerID, careerID)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatal("el token debería expirar en el futuro")
	}
}
