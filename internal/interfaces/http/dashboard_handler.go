package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

// DashboardHandler vistas compuestas: dashboard y niveles de stock.
type DashboardHandler struct {
	schedUC    *schedule.ScheduleUseCase
	locationUC *usecase.LocationUseCase
	reportUC   *usecase.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(schedUC *schedule.ScheduleUseCase, locationUC *usecase.LocationUseCase, reportUC *usecase.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{schedUC: schedUC, locationUC: locationUC, reportUC: reportUC}
}

// Dashboard godoc
// @Summary      Resumen general
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	schedules, err := h.schedUC.ListRecent(5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	ports, err := h.locationUC.Ports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	plants, err := h.locationUC.Plants()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardResponse{Schedules: schedules, Ports: ports, Plants: plants})
}

// StockLevels godoc
// @Summary      Niveles de stock actuales e históricos
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "cantidad de fotos históricas (default 20)"
// @Success      200  {object}  dto.StockLevelsResponse
// @Router       /api/stock [get]
func (h *DashboardHandler) StockLevels(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	ports, err := h.locationUC.Ports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	plants, err := h.locationUC.Plants()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	snaps, err := h.reportUC.RecentSnapshots(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockLevelsResponse{Ports: ports, Plants: plants, Snapshots: snaps})
}
