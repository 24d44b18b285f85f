package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
)

// FileHandler subida, listado y descarga de archivos.
type FileHandler struct {
	uc *usecase.FileUseCase
}

// NewFileHandler construye el handler de archivos.
func NewFileHandler(uc *usecase.FileUseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir archivo
// @Description  Solo extensiones csv, xlsx y xls.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "archivo a subir"
// @Success      201   {object}  dto.UploadedFileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/files [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo file"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer src.Close()
	out, err := h.uc.Upload(fh.Filename, src, GetEmail(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EXTENSION", Message: "solo se admiten archivos csv, xlsx y xls"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar archivos subidos
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.FileListResponse
// @Router       /api/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	files, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FileListResponse{
		Files:     files,
		CanUpload: domain.CanEdit(GetRole(c)),
	})
}

// Download godoc
// @Summary      Descargar archivo
// @Tags         files
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del archivo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/{id}/download [get]
func (h *FileHandler) Download(c *fiber.Ctx) error {
	f, err := h.uc.Download(c.Params("id"), GetEmail(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Fiber entrega el blob con el nombre original como attachment.
	return c.Download(f.FilePath, f.Filename)
}
