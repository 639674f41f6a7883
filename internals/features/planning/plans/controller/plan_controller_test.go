// file: internals/features/planning/plans/controller/plan_controller_test.go
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

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	skillModel "academico_backend/internals/features/academic/softskills/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	userModel "academico_backend/internals/features/people/users/model"
	"academico_backend/internals/features/planning/plans/dto"
	"academico_backend/internals/features/planning/plans/model"
	reportModel "academico_backend/internals/features/planning/reports/model"
	"academico_backend/internals/testutil"
)

type planFixtures struct {
	Subject subjectModel.SubjectModel
	Teacher userModel.UserModel
	Skill   skillModel.SoftSkillModel
}

func seedPlanFixtures(t *testing.T, tx *gorm.DB) planFixtures {
	t.Helper()
	suffix := uuid.NewString()[:8]

	career := catalogModel.CareerModel{Name: "Carrera " + suffix}
	if err := tx.Create(&career).Error; err != nil {
		t.Fatalf("seed career: %v", err)
	}
	cycle := catalogModel.CycleModel{Name: "Y" + suffix}
	if err := tx.Create(&cycle).Error; err != nil {
		t.Fatalf("seed cycle: %v", err)
	}
	unit := catalogModel.CurricularUnitModel{Name: "Unidad " + suffix}
	if err := tx.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	subject := subjectModel.SubjectModel{
		Name: "Programación " + suffix, CareerID: career.ID, CycleID: cycle.ID, UnitID: unit.ID,
	}
	if err := tx.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	teacher := userModel.UserModel{
		IDNumber: suffix, FirstName: "Luis", LastName: "Mera",
		Email: suffix + "@instituto.edu.ec", Password: "x", Role: "teacher",
	}
	if err := tx.Create(&teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	skill := skillModel.SoftSkillModel{Name: "Habilidad " + suffix}
	if err := tx.Create(&skill).Error; err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	return planFixtures{Subject: subject, Teacher: teacher, Skill: skill}
}

func newPlanApp(tx *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewPlanController(tx)
	app.Post("/plans", ctl.Create)
	app.Get("/planificaciones/verificar/:subject_id", ctl.Verify)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
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

func TestCreatePlanDuplicateCompositeConflicts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedPlanFixtures(t, tx)
	app := newPlanApp(tx)

	body := dto.CreatePlanRequest{
		SubjectID: fx.Subject.ID, TeacherID: fx.Teacher.ID,
		Term: 1, PeriodLabel: "2026-A", Section: "A",
	}
	resp, out := postJSON(t, app, "/plans", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("primer plan: status = %d (%v)", resp.StatusCode, out)
	}

	resp, _ = postJSON(t, app, "/plans", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("plan duplicado: status = %d, quería 409", resp.StatusCode)
	}
}

func TestCreatePlanWithDetailsIsAtomic(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedPlanFixtures(t, tx)
	app := newPlanApp(tx)

	body := dto.CreatePlanRequest{
		SubjectID: fx.Subject.ID, TeacherID: fx.Teacher.ID,
		Term: 1, PeriodLabel: "2026-A", Section: "B",
		Details: []dto.CreatePlanDetailInput{
			{SkillID: fx.Skill.ID, ActivitiesText: "Debate grupal", LearningOutcome: "Argumenta con evidencia"},
			{SkillID: uuid.New(), ActivitiesText: "Actividad rota", LearningOutcome: "n/a"},
		},
	}
	resp, _ := postJSON(t, app, "/plans", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("detalle con habilidad inexistente: status = %d, quería 400", resp.StatusCode)
	}

	// el plan no debe haber quedado a medias
	var count int64
	if err := tx.Model(&model.PlanModel{}).
		Where("subject_id = ? AND section = ?", fx.Subject.ID, "B").
		Count(&count).Error; err != nil {
		t.Fatalf("contar planes: %v", err)
	}
	if count != 0 {
		t.Fatalf("planes tras fallo = %d, quería 0", count)
	}
}

func TestVerifyPlanExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedPlanFixtures(t, tx)
	app := newPlanApp(tx)

	plan := model.PlanModel{
		SubjectID: fx.Subject.ID, TeacherID: fx.Teacher.ID,
		Term: 2, PeriodLabel: "2026-A", Section: "A",
	}
	if err := tx.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	check := func(query string, want bool) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet,
			"/planificaciones/verificar/"+fx.Subject.ID.String()+"?"+query, nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("verificar: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("verificar: status = %d", resp.StatusCode)
		}
		var out map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		data := out["data"].(map[string]any)
		if data["exists"] != want {
			t.Fatalf("exists = %v con %q, quería %v", data["exists"], query, want)
		}
	}

	check("term=2&period_label=2026-A&section=A", true)
	check("term=1&period_label=2026-A&section=A", false)
	check("term=2&period_label=2026-A&section=B", false)
}

func TestDeletePlanCascadesDetailsAndReports(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	fx := seedPlanFixtures(t, tx)

	plan := model.PlanModel{
		SubjectID: fx.Subject.ID, TeacherID: fx.Teacher.ID,
		Term: 1, PeriodLabel: "2026-B", Section: "A",
	}
	if err := tx.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	detail := model.PlanDetailModel{
		PlanID: plan.ID, SkillID: fx.Skill.ID,
		ActivitiesText: "Exposición", LearningOutcome: "Comunica resultados",
	}
	if err := tx.Create(&detail).Error; err != nil {
		t.Fatalf("seed detail: %v", err)
	}
	report := reportModel.ReportModel{
		PlanID: plan.ID, SkillID: fx.Skill.ID, ProgressConclusion: "Avance sostenido",
	}
	if err := tx.Create(&report).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}

	if err := tx.Delete(&model.PlanModel{}, "id = ?", plan.ID).Error; err != nil {
		t.Fatalf("delete plan: %v", err)
	}

	var details, reports int64
	if err := tx.Model(&model.PlanDetailModel{}).Where("plan_id = ?", plan.ID).Count(&details).Error; err != nil {
		t.Fatalf("contar detalles: %v", err)
	}
	if err := tx.Model(&reportModel.ReportModel{}).Where("plan_id = ?", plan.ID).Count(&reports).Error; err != nil {
		t.Fatalf("contar reportes: %v", err)
	}
	if details != 0 || reports != 0 {
		t.Fatalf("tras borrar el plan: detalles = %d, reportes = %d, quería 0/0", details, reports)
	}
}
