package routes

import (
	"skill-bridge/internal/delivery/http/handler"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	analysis *handler.AnalysisHandler
	skills   *handler.SkillHandler
}

func NewRegistry(analysisUC usecase.AnalysisUsecase, skillUC usecase.SkillUsecase) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		analysis: handler.NewAnalysisHandler(analysisUC),
		skills:   handler.NewSkillHandler(skillUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.analysis.RegisterRoutes(v1)
	r.skills.RegisterRoutes(v1)
}
