package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

// ActivityHandler consulta de la bitácora de usuario.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler de actividad.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Actividad reciente
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "cantidad de registros (default 50)"
// @Success      200  {array}  dto.ActivityRecordDTO
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	out, err := h.uc.ListRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
