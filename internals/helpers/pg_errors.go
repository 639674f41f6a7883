package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// pgSQLErr cubre los drivers que exponen SQLSTATE (pgconn, etc.).
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// SQLState extrae el código SQLSTATE de un error de Postgres, venga de
// lib/pq o de pgx (driver de GORM). Devuelve "" si no aplica.
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState()
	}
	return ""
}

// 23505 = unique_violation
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if SQLState(err) == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// 23503 = foreign_key_violation
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if SQLState(err) == "23503" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "foreign key constraint") || strings.Contains(s, "violates foreign key")
}

// MapPGError traduce la violación detectada por el store al status + mensaje
// del contrato de errores. El pre-check en los controllers es solo asesor:
// el constraint de la DB es la fuente de verdad.
func MapPGError(err error) (int, string) {
	switch SQLState(err) {
	case "23505":
		return http.StatusConflict, "Registro duplicado (unique violation)."
	case "23503":
		return http.StatusBadRequest, "Referencia no encontrada (FK violation)."
	case "23502":
		return http.StatusBadRequest, "Campo obligatorio ausente (not-null violation)."
	}
	if IsDuplicateKey(err) {
		return http.StatusConflict, "Registro duplicado (unique violation)."
	}
	if IsForeignKeyViolation(err) {
		return http.StatusBadRequest, "Referencia no encontrada (FK violation)."
	}
	return http.StatusInternalServerError, err.Error()
}
