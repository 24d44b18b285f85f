package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/infrastructure/export"
)

// ExportHandler descarga de datasets en csv, xlsx o xml.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar dataset
// @Description  dataset ∈ {schedules, stock_levels}; format ∈ {csv, xlsx, xml} (csv por defecto).
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Param        dataset  path   string  true   "schedules | stock_levels"
// @Param        format   query  string  false  "csv | xlsx | xml"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/{dataset} [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	// El formato se resuelve antes de consultar: un formato desconocido tampoco
	// debe disparar consulta alguna.
	renderer, err := export.ForFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser csv, xlsx o xml"})
	}
	ds, err := h.uc.Dataset(c.Params("dataset"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATASET", Message: "dataset debe ser schedules o stock_levels"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := renderer.Render(ds)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.%s"`, ds.Name, renderer.Extension()))
	return c.Send(out)
}
