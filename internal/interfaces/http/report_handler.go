package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/infrastructure/pdf"
)

// ReportHandler reportes agregados y su versión PDF.
type ReportHandler struct {
	reportUC   *usecase.ReportUseCase
	locationUC *usecase.LocationUseCase
	pdfGen     *pdf.MarotoReportGenerator
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(reportUC *usecase.ReportUseCase, locationUC *usecase.LocationUseCase, pdfGen *pdf.MarotoReportGenerator) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, locationUC: locationUC, pdfGen: pdfGen}
}

// Summary godoc
// @Summary      Reporte de operaciones
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reportUC.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte de operaciones en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	report, err := h.reportUC.Summary(c.Context())
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
	doc, err := h.pdfGen.GenerateOperationsReport(report, ports, plants)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="operations_report.pdf"`)
	return c.Send(doc)
}
