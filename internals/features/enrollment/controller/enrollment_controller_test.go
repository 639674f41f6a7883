// file: internals/features/enrollment/controller/enrollment_controller_test.go
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
	periodModel "academico_backend/internals/features/academic/periods/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	"academico_backend/internals/features/enrollment/dto"
	"academico_backend/internals/features/enrollment/model"
	studentModel "academico_backend/internals/features/people/students/model"
	"academico_backend/internals/testutil"
)

type fixtures struct {
	Student studentModel.StudentModel
	Period  periodModel.PeriodModel
	Cycle   catalogModel.CycleModel
	Subject subjectModel.SubjectModel
}

// seedFixtures crea el mínimo de filas para matricular: estudiante,
// período, ciclo y una asignatura con sus catálogos.
func seedFixtures(t *testing.T, tx *gorm.DB) fixtures {
	t.Helper()
	suffix := uuid.NewString()[:8]

	career := catalogModel.CareerModel{Name: "Desarrollo de Software " + suffix}
	if err := tx.Create(&career).Error; err != nil {
		t.Fatalf("seed career: %v", err)
	}
	cycle := catalogModel.CycleModel{Name: "C" + suffix}
	if err := tx.Create(&cycle).Error; err != nil {
		t.Fatalf("seed cycle: %v", err)
	}
	unit := catalogModel.CurricularUnitModel{Name: "Unidad básica " + suffix}
	if err := tx.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	subject := subjectModel.SubjectModel{
		Name: "Cálculo I " + suffix, CareerID: career.ID, CycleID: cycle.ID, UnitID: unit.ID,
	}
	if err := tx.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	period := periodModel.PeriodModel{Name: "P-" + suffix}
	if err := tx.Create(&period).Error; err != nil {
		t.Fatalf("seed period: %v", err)
	}
	student := studentModel.StudentModel{
		IDNumber: suffix + "01", FirstName: "Ana", LastName: "Paredes",
		Career: "Desarrollo de Software",
	}
	if err := tx.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return fixtures{Student: student, Period: period, Cycle: cycle, Subject: subject}
}

func newApp(tx *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewEnrollmentController(tx)
	app.Post("/enrollments", ctl.Enroll)
	app.Get("/enrollments", ctl.ListByPeriod)
	app.Post("/enrollments/:id/details", ctl.AddDetail)
	app.Put("/enrollments/details/:detail_id/grade", ctl.SetGrade)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestEnrollTwiceSamePeriodConflicts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedFixtures(t, tx)
	app := newApp(tx)

	body := dto.EnrollRequest{
		StudentID: fx.Student.ID, PeriodID: fx.Period.ID, CycleID: fx.Cycle.ID, Section: "A",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/enrollments", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("primera matrícula: status = %d, quería 201", resp.StatusCode)
	}

	resp, out := doJSON(t, app, http.MethodPost, "/enrollments", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("segunda matrícula: status = %d, quería 409 (%v)", resp.StatusCode, out)
	}
}

func TestSetGradeValidatesRangeAndDerivesStatus(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedFixtures(t, tx)
	app := newApp(tx)

	enr := model.EnrollmentModel{
		StudentID: fx.Student.ID, PeriodID: fx.Period.ID, CycleID: fx.Cycle.ID,
		Section: "A", Status: "active",
	}
	if err := tx.Create(&enr).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	detail := model.EnrollmentDetailModel{
		EnrollmentID: enr.ID, SubjectID: fx.Subject.ID,
		Status: model.DetailStatusInProgress, Section: "A",
	}
	if err := tx.Create(&detail).Error; err != nil {
		t.Fatalf("seed detail: %v", err)
	}
	gradePath := fmt.Sprintf("/enrollments/details/%s/grade", detail.ID)

	resp, _ := doJSON(t, app, http.MethodPut, gradePath, dto.SetGradeRequest{Grade: 11.00})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("nota 11.00: status = %d, quería 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPut, gradePath, dto.SetGradeRequest{Grade: 8.50})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("nota 8.50: status = %d, quería 200", resp.StatusCode)
	}
	var stored model.EnrollmentDetailModel
	if err := tx.First(&stored, "id = ?", detail.ID).Error; err != nil {
		t.Fatalf("leer detalle: %v", err)
	}
	if stored.FinalGrade == nil || *stored.FinalGrade != 8.50 {
		t.Fatalf("final_grade = %v, quería 8.50", stored.FinalGrade)
	}
	if stored.Status != model.DetailStatusPassed {
		t.Fatalf("status = %q, quería %q", stored.Status, model.DetailStatusPassed)
	}

	resp, _ = doJSON(t, app, http.MethodPut, gradePath, dto.SetGradeRequest{Grade: 5.25})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("nota 5.25: status = %d, quería 200", resp.StatusCode)
	}
	if err := tx.First(&stored, "id = ?", detail.ID).Error; err != nil {
		t.Fatalf("leer detalle: %v", err)
	}
	if stored.Status != model.DetailStatusFailed {
		t.Fatalf("status = %q, quería %q", stored.Status, model.DetailStatusFailed)
	}
}

func TestEnrollAddDetailThenListByPeriod(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedFixtures(t, tx)
	app := newApp(tx)

	resp, out := doJSON(t, app, http.MethodPost, "/enrollments", dto.EnrollRequest{
		StudentID: fx.Student.ID, PeriodID: fx.Period.ID, CycleID: fx.Cycle.ID, Section: "B",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("matrícula: status = %d (%v)", resp.StatusCode, out)
	}
	data := out["data"].(map[string]any)
	enrollmentID := data["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/enrollments/"+enrollmentID+"/details", dto.AddDetailRequest{
		SubjectID: fx.Subject.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("detalle: status = %d", resp.StatusCode)
	}

	resp, out = doJSON(t, app, http.MethodGet, "/enrollments?period_id="+fx.Period.ID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("listado: status = %d", resp.StatusCode)
	}
	rows := out["data"].([]any)
	if len(rows) != 1 {
		t.Fatalf("filas = %d, quería 1", len(rows))
	}
	row := rows[0].(map[string]any)
	if row["student_name"] != "Paredes Ana" {
		t.Fatalf("student_name = %v", row["student_name"])
	}
	if row["subject_name"] != fx.Subject.Name {
		t.Fatalf("subject_name = %v, quería %q", row["subject_name"], fx.Subject.Name)
	}
	// el detalle hereda el paralelo de la matrícula
	if row["detail_status"] != model.DetailStatusInProgress {
		t.Fatalf("detail_status = %v", row["detail_status"])
	}
}

func TestDeleteEnrollmentCascadesDetails(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedFixtures(t, tx)

	enr := model.EnrollmentModel{
		StudentID: fx.Student.ID, PeriodID: fx.Period.ID, CycleID: fx.Cycle.ID,
		Section: "A", Status: "active",
	}
	if err := tx.Create(&enr).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	detail := model.EnrollmentDetailModel{
		EnrollmentID: enr.ID, SubjectID: fx.Subject.ID,
		Status: model.DetailStatusInProgress, Section: "A",
	}
	if err := tx.Create(&detail).Error; err != nil {
		t.Fatalf("seed detail: %v", err)
	}

	if err := tx.Delete(&model.EnrollmentModel{}, "id = ?", enr.ID).Error; err != nil {
		t.Fatalf("delete enrollment: %v", err)
	}

	var count int64
	if err := tx.Model(&model.EnrollmentDetailModel{}).
		Where("enrollment_id = ?", enr.ID).Count(&count).Error; err != nil {
		t.Fatalf("contar detalles: %v", err)
	}
	if count != 0 {
		t.Fatalf("detalles tras borrar = %d, quería 0", count)
	}
}
