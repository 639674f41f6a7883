// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/constants"
	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	dashboardDto "academico_backend/internals/features/dashboard/dto"
	enrollModel "academico_backend/internals/features/enrollment/model"
	studentModel "academico_backend/internals/features/people/students/model"
	userModel "academico_backend/internals/features/people/users/model"
	planModel "academico_backend/internals/features/planning/plans/model"
	reportModel "academico_backend/internals/features/planning/reports/model"
	helper "academico_backend/internals/helpers"
)

// Solo lectura: el tablero nunca escribe.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* ===============================
   GET /dashboard/stats
   =============================== */
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var out dashboardDto.StatsResponse
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&out.Students, db.Model(&studentModel.StudentModel{})},
		{&out.Subjects, db.Model(&subjectModel.SubjectModel{})},
		{&out.Enrollments, db.Model(&enrollModel.EnrollmentModel{})},
		{&out.Plans, db.Model(&planModel.PlanModel{})},
		{&out.Reports, db.Model(&reportModel.ReportModel{})},
		{&out.Teachers, db.Model(&userModel.UserModel{}).Where("role = ?", constants.RoleTeacher)},
	}
	for _, cq := range counts {
		if err := cq.query.Count(cq.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los conteos")
		}
	}
	return helper.JsonOK(c, "ok", out)
}

/* ===============================
   GET /dashboard/filtros-reporte
   Períodos + carreras para los combos del reporte general.
   =============================== */
func (ctl *DashboardController) ReportFilters(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var out dashboardDto.ReportFiltersResponse
	if err := db.Order("name desc").Find(&out.Periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer los períodos")
	}
	if err := db.Order("name asc").Find(&out.Careers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer las carreras")
	}
	return helper.JsonOK(c, "ok", out)
}

/* ===============================
   GET /dashboard/reporte-general?period_id=&career_id=
   Una fila por asignatura de la carrera con matriculados, aprobados,
   reprobados, planes y reportes del período.
   =============================== */
func (ctl *DashboardController) GeneralReport(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	periodID := strings.TrimSpace(c.Query("period_id"))
	careerID := strings.TrimSpace(c.Query("career_id"))
	if periodID == "" || careerID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id y career_id son obligatorios")
	}

	var period periodModel.PeriodModel
	if err := db.First(&period, "id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Período no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el período")
	}
	var career catalogModel.CareerModel
	if err := db.First(&career, "id = ?", careerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer la carrera")
	}

	// los planes guardan el período como etiqueta; los demás por FK
	const q = `
		SELECT
			s.id   AS subject_id,
			s.name AS subject_name,
			cy.name AS cycle_name,
			COUNT(DISTINCT ed.id)                                          AS enrolled_count,
			COUNT(DISTINCT ed.id) FILTER (WHERE ed.status = 'passed')      AS passed_count,
			COUNT(DISTINCT ed.id) FILTER (WHERE ed.status = 'failed')      AS failed_count,
			COUNT(DISTINCT pl.id)                                          AS plan_count,
			COUNT(DISTINCT rp.id)                                          AS report_count
		FROM subjects s
		JOIN cycles cy ON cy.id = s.cycle_id
		LEFT JOIN enrollment_details ed
			ON ed.subject_id = s.id
			AND ed.enrollment_id IN (SELECT e.id FROM enrollments e WHERE e.period_id = ?)
		LEFT JOIN plans pl
			ON pl.subject_id = s.id AND pl.period_label = ?
		LEFT JOIN reports rp
			ON rp.plan_id = pl.id
		WHERE s.career_id = ?
		GROUP BY s.id, s.name, cy.name
		ORDER BY cy.name, s.name`

	rows := make([]dashboardDto.GeneralReportRow, 0)
	if err := db.Raw(q, period.ID, period.Name, career.ID).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo armar el reporte general")
	}

	return helper.JsonOK(c, "ok", dashboardDto.GeneralReportResponse{
		PeriodID: period.ID,
		CareerID: career.ID,
		Rows:     rows,
	})
}
