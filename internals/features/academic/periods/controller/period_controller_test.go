// file: internals/features/academic/periods/controller/period_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academico_backend/internals/features/academic/periods/dto"
	"academico_backend/internals/features/academic/periods/model"
	"academico_backend/internals/testutil"
)

func newPeriodApp(tx *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewPeriodController(tx)
	app.Post("/periods", ctl.Create)
	app.Put("/periods/:id", ctl.Update)
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestActivatingPeriodDeactivatesTheRest(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	app := newPeriodApp(tx)
	suffix := uuid.NewString()[:8]

	yes := true
	resp := send(t, app, http.MethodPost, "/periods", dto.CreatePeriodRequest{
		Name: "A-" + suffix, Active: &yes,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("primer período: status = %d", resp.StatusCode)
	}

	second := model.PeriodModel{Name: "B-" + suffix}
	if err := tx.Create(&second).Error; err != nil {
		t.Fatalf("seed segundo período: %v", err)
	}
	resp = send(t, app, http.MethodPut, "/periods/"+second.ID.String(), dto.UpdatePeriodRequest{Active: &yes})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("activar segundo período: status = %d", resp.StatusCode)
	}

	var active []model.PeriodModel
	if err := tx.Find(&active, "active = true").Error; err != nil {
		t.Fatalf("leer activos: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("períodos activos = %d, quería 1", len(active))
	}
	if active[0].ID != second.ID {
		t.Fatalf("activo = %s, quería %s", active[0].Name, second.Name)
	}
}
