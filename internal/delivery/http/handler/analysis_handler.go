package handler

import (
	"errors"

	"skill-bridge/internal/delivery/http/dto"
	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

type analysisRequest struct {
	Role             string   `json:"role"`
	Skills           []string `json:"skills"`
	ProjectCount     int      `json:"project_count"`
	ExperienceMonths int      `json:"experience_months"`
	Boost            float64  `json:"project_skill_boost"`
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analysis")
	grp.Post("/", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var req analysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	res, err := h.uc.Analyze(c.Context(), usecase.AnalysisParams{
		Role:             req.Role,
		Skills:           req.Skills,
		ProjectCount:     req.ProjectCount,
		ExperienceMonths: req.ExperienceMonths,
		Boost:            req.Boost,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponse(res))
}
