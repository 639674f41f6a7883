// file: internals/features/planning/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	skillModel "academico_backend/internals/features/academic/softskills/model"
	planModel "academico_backend/internals/features/planning/plans/model"
	"academico_backend/internals/features/planning/reports/dto"
	"academico_backend/internals/features/planning/reports/model"
	helper "academico_backend/internals/helpers"
)

var validate = validator.New()

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ===============================
   GET /reports?plan_id=
   =============================== */
func (ctl *ReportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ReportModel{})
	if v := strings.TrimSpace(c.Query("plan_id")); v != "" {
		q = q.Where("plan_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los reportes")
	}

	var rows []model.ReportModel
	if err := q.Preload("Skill").
		Order("generated_at desc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los reportes")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===============================
   POST /reports
   Ambos padres deben existir; si falta uno la operación no crea nada.
   =============================== */
func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var plan planModel.PlanModel
	if err := db.Select("id").First(&plan, "id = ?", req.PlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan o habilidad no encontrados")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el plan")
	}
	var skill skillModel.SoftSkillModel
	if err := db.Select("id").First(&skill, "id = ?", req.SkillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan o habilidad no encontrados")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar la habilidad")
	}

	row := model.ReportModel{
		PlanID:             req.PlanID,
		SkillID:            req.SkillID,
		ProgressConclusion: strings.TrimSpace(req.ProgressConclusion),
	}
	if err := db.Create(&row).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			// el pre-check es advisory: el padre pudo desaparecer entre medio
			return helper.JsonError(c, fiber.StatusNotFound, "Plan o habilidad no encontrados")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Reporte generado", row)
}

/* ===============================
   POST /reports/bulk-conclusions
   Por-fila: una fila inválida no tumba las demás.
   =============================== */
func (ctl *ReportController) BulkSaveConclusions(c *fiber.Ctx) error {
	var req dto.BulkConclusionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	out := dto.BulkConclusionsResult{
		Total:   len(req.Conclusions),
		Results: make([]dto.ConclusionRowResult, 0, len(req.Conclusions)),
	}
	for _, in := range req.Conclusions {
		note := strings.TrimSpace(in.CoordinatorNote)
		res := db.Model(&model.ReportModel{}).
			Where("id = ?", in.ReportID).
			Update("coordinator_note", note)
		switch {
		case res.Error != nil:
			out.Failed++
			out.Results = append(out.Results, dto.ConclusionRowResult{ReportID: in.ReportID, OK: false, Error: res.Error.Error()})
		case res.RowsAffected == 0:
			out.Failed++
			out.Results = append(out.Results, dto.ConclusionRowResult{ReportID: in.ReportID, OK: false, Error: "reporte no encontrado"})
		default:
			out.Saved++
			out.Results = append(out.Results, dto.ConclusionRowResult{ReportID: in.ReportID, OK: true})
		}
	}
	return helper.JsonOK(c, "Conclusiones procesadas", out)
}

/* ===============================
   GET /plans/:id/pdf-data
   Join aplanado para el renderizador externo del PDF.
   =============================== */
func (ctl *ReportController) BuildPdfData(c *fiber.Ctx) error {
	planID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var plan planModel.PlanModel
	if err := db.
		Preload("Subject").Preload("Subject.Career").Preload("Subject.Cycle").
		Preload("Teacher").
		Preload("Details").Preload("Details.Skill").
		First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el plan")
	}

	var reports []model.ReportModel
	if err := db.Find(&reports, "plan_id = ?", planID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron leer los reportes del plan")
	}
	// última conclusión por habilidad (generated_at asc: la última pisa)
	conclusionBySkill := make(map[string]*model.ReportModel, len(reports))
	for i := range reports {
		r := &reports[i]
		prev, ok := conclusionBySkill[r.SkillID.String()]
		if !ok || r.GeneratedAt.After(prev.GeneratedAt) {
			conclusionBySkill[r.SkillID.String()] = r
		}
	}

	out := dto.PdfData{
		PlanID:      plan.ID,
		Term:        termLabel(plan.Term),
		PeriodLabel: plan.PeriodLabel,
		Section:     plan.Section,
		Skills:      make([]dto.PdfSkillBlock, 0, len(plan.Details)),
	}
	if plan.Subject != nil {
		out.SubjectName = plan.Subject.Name
		if plan.Subject.Career != nil {
			out.CareerName = plan.Subject.Career.Name
		}
		if plan.Subject.Cycle != nil {
			out.CycleName = plan.Subject.Cycle.Name
		}
	}
	if plan.Teacher != nil {
		out.TeacherName = strings.TrimSpace(plan.Teacher.FirstName + " " + plan.Teacher.LastName)
	}
	for _, d := range plan.Details {
		block := dto.PdfSkillBlock{
			SkillID:         d.SkillID,
			ActivitiesText:  d.ActivitiesText,
			LearningOutcome: d.LearningOutcome,
		}
		if d.Skill != nil {
			block.SkillName = d.Skill.Name
		}
		if r, ok := conclusionBySkill[d.SkillID.String()]; ok {
			block.Conclusion = &r.ProgressConclusion
			block.CoordinatorNote = r.CoordinatorNote
		}
		out.Skills = append(out.Skills, block)
	}
	return helper.JsonOK(c, "ok", out)
}

func termLabel(term int) string {
	if term == 2 {
		return "Segundo parcial"
	}
	return "Primer parcial"
}

/* ===============================
   DELETE /reports/:id
   =============================== */
func (ctl *ReportController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ReportModel{}, "id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Reporte no encontrado")
	}
	return helper.JsonDeleted(c, "Reporte eliminado", fiber.Map{"id": id})
}
