package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

// PlannerHandler endpoints placeholder del planificador. Las respuestas llevan
// mock:true; no hay algoritmo detrás.
type PlannerHandler struct {
	uc *usecase.PlannerUseCase
}

// NewPlannerHandler construye el handler del planner.
func NewPlannerHandler(uc *usecase.PlannerUseCase) *PlannerHandler {
	return &PlannerHandler{uc: uc}
}

// Optimize godoc
// @Summary      Optimizar despachos (mock)
// @Tags         planner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OptimizeResponse
// @Router       /api/planner/optimize [post]
func (h *PlannerHandler) Optimize(c *fiber.Ctx) error {
	return c.JSON(h.uc.Optimize())
}

// DelayPredictions godoc
// @Summary      Predicción de atrasos (mock)
// @Tags         planner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DelayPredictionsResponse
// @Router       /api/planner/delay-predictions [get]
func (h *PlannerHandler) DelayPredictions(c *fiber.Ctx) error {
	out, err := h.uc.PredictDelays()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
