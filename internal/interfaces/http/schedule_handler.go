package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/domain"
)

// ScheduleHandler maneja el ciclo de vida de los schedules.
type ScheduleHandler struct {
	uc *schedule.ScheduleUseCase
}

// NewScheduleHandler construye el handler de schedules.
func NewScheduleHandler(uc *schedule.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateScheduleRequest  true  "datos del schedule"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, GetEmail(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de schedule inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "REF_NOT_FOUND", Message: "alguna entidad referenciada no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar schedules
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ScheduleListResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ScheduleListResponse{
		Schedules: list,
		CanEdit:   domain.CanEdit(GetRole(c)),
	})
}

// GetByID godoc
// @Summary      Obtener schedule por ID
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del schedule"
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "schedule no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar estado de un schedule
// @Description  Al completar, aplica la mutación de stock en la misma transacción.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del schedule"
// @Param        body  body  dto.UpdateStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/schedules/{id}/status [put]
func (h *ScheduleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Transition(c.Context(), c.Params("id"), in.Status, GetEmail(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado desconocido"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "schedule no encontrado"})
		case domain.ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TERMINAL_STATUS", Message: "el schedule ya está en un estado terminal"})
		case domain.ErrCapacityExceeded:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CAPACITY_EXCEEDED", Message: "la operación excede la capacidad del destino"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el puerto no tiene stock suficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "estado actualizado"})
}
