// file: internals/features/academic/subjects/controller/subject_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	"academico_backend/internals/features/academic/subjects/dto"
	"academico_backend/internals/features/academic/subjects/model"
	"academico_backend/internals/testutil"
)

type catalogFixtures struct {
	Career catalogModel.CareerModel
	Cycle  catalogModel.CycleModel
	Unit   catalogModel.CurricularUnitModel
}

func seedCatalogs(t *testing.T, tx *gorm.DB) catalogFixtures {
	t.Helper()
	suffix := uuid.NewString()[:8]

	career := catalogModel.CareerModel{Name: "Software " + suffix}
	if err := tx.Create(&career).Error; err != nil {
		t.Fatalf("seed career: %v", err)
	}
	cycle := catalogModel.CycleModel{Name: "S" + suffix}
	if err := tx.Create(&cycle).Error; err != nil {
		t.Fatalf("seed cycle: %v", err)
	}
	unit := catalogModel.CurricularUnitModel{Name: "Básica " + suffix}
	if err := tx.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	return catalogFixtures{Career: career, Cycle: cycle, Unit: unit}
}

func newSubjectApp(tx *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewSubjectController(tx)
	app.Post("/subjects", ctl.Create)
	app.Post("/subjects/import", ctl.Import)
	return app
}

func post(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestCreateSubjectDuplicateInCareerConflicts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedCatalogs(t, tx)
	app := newSubjectApp(tx)

	body := dto.CreateSubjectRequest{
		Name: "Cálculo I", CareerID: fx.Career.ID, CycleID: fx.Cycle.ID, UnitID: fx.Unit.ID,
	}
	resp, out := post(t, app, "/subjects", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("primera asignatura: status = %d (%v)", resp.StatusCode, out)
	}

	resp, _ = post(t, app, "/subjects", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("asignatura repetida en la carrera: status = %d, quería 409", resp.StatusCode)
	}
}

func TestImportSubjectsPerRowIsolation(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedCatalogs(t, tx)
	app := newSubjectApp(tx)

	rows := make([]dto.ImportSubjectRow, 0, 10)
	for i := 0; i < 10; i++ {
		career := fx.Career.Name
		if i == 3 || i == 7 {
			// carrera que no existe en el catálogo
			career = "Carrera Fantasma"
		}
		rows = append(rows, dto.ImportSubjectRow{
			Name:   fmt.Sprintf("Asignatura %02d", i),
			Career: career,
			Cycle:  fx.Cycle.Name,
			Unit:   fx.Unit.Name,
		})
	}

	resp, out := post(t, app, "/subjects/import", dto.ImportSubjectsRequest{Rows: rows})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import: status = %d (%v)", resp.StatusCode, out)
	}

	data := out["data"].(map[string]any)
	if got := data["total"].(float64); got != 10 {
		t.Fatalf("total = %v, quería 10", got)
	}
	if got := data["ok_count"].(float64); got != 8 {
		t.Fatalf("ok_count = %v, quería 8", got)
	}
	failed := 0
	for _, raw := range data["rows"].([]any) {
		row := raw.(map[string]any)
		if row["ok"] != true {
			failed++
			if row["error"] == nil || row["error"] == "" {
				t.Fatalf("fila fallida sin motivo: %v", row)
			}
		}
	}
	if failed != 2 {
		t.Fatalf("filas fallidas = %d, quería 2", failed)
	}

	// las ocho filas buenas quedaron insertadas
	var count int64
	if err := tx.Model(&model.SubjectModel{}).
		Where("career_id = ?", fx.Career.ID).Count(&count).Error; err != nil {
		t.Fatalf("contar asignaturas: %v", err)
	}
	if count != 8 {
		t.Fatalf("asignaturas insertadas = %d, quería 8", count)
	}
}
