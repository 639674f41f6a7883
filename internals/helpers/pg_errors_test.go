// file: internals/helpers/pg_errors_test.go
package helper

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
)

func TestSQLStateFromPqError(t *testing.T) {
	err := &pq.Error{Code: "23505"}
	if got := SQLState(err); got != "23505" {
		t.Fatalf("SQLState = %q, quería 23505", got)
	}
	if got := SQLState(errors.New("cualquier cosa")); got != "" {
		t.Fatalf("SQLState sobre error genérico = %q, quería vacío", got)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !IsDuplicateKey(&pq.Error{Code: "23505"}) {
		t.Fatal("23505 debería ser duplicado")
	}
	// mensaje del driver sin SQLSTATE
	if !IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "uq_periods_name"`)) {
		t.Fatal("mensaje de duplicate key debería ser duplicado")
	}
	if IsDuplicateKey(&pq.Error{Code: "23503"}) {
		t.Fatal("23503 no es duplicado")
	}
	if IsDuplicateKey(nil) {
		t.Fatal("nil no es duplicado")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("23503 debería ser violación de FK")
	}
	if IsForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("23505 no es violación de FK")
	}
}

func TestMapPGError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicado", &pq.Error{Code: "23505"}, http.StatusConflict},
		{"fk", &pq.Error{Code: "23503"}, http.StatusBadRequest},
		{"not null", &pq.Error{Code: "23502"}, http.StatusBadRequest},
		{"generico", errors.New("se cayó la red"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := MapPGError(tc.err)
			if status != tc.want {
				t.Fatalf("status = %d, quería %d", status, tc.want)
			}
			if msg == "" {
				t.Fatal("mensaje vacío")
			}
		})
	}
}
