package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// BlobStore puerto de salida hacia el almacenamiento de blobs. La mecánica
// (disco, bucket) es un colaborador externo; aquí solo viaja el contenido.
type BlobStore interface {
	// Save guarda el contenido bajo un nombre derivado de filename (con prefijo
	// de timestamp para desambiguar) y devuelve la ruta almacenada.
	Save(filename string, content io.Reader) (string, error)
}

// Extensiones admitidas para subir.
var allowedExtensions = map[string]bool{"csv": true, "xlsx": true, "xls": true}

// FileUseCase subida y descarga de archivos con metadatos en DB.
type FileUseCase struct {
	repo     repository.FileRepository
	store    BlobStore
	activity *ActivityUseCase
}

// NewFileUseCase construye el caso de uso.
func NewFileUseCase(repo repository.FileRepository, store BlobStore, activity *ActivityUseCase) *FileUseCase {
	return &FileUseCase{repo: repo, store: store, activity: activity}
}

// Upload valida la extensión, persiste el blob y registra los metadatos.
func (uc *FileUseCase) Upload(filename string, content io.Reader, uploadedBy string) (*dto.UploadedFileResponse, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if filename == "" || ext == "" || !allowedExtensions[ext] {
		return nil, domain.ErrInvalidInput
	}
	path, err := uc.store.Save(filename, content)
	if err != nil {
		return nil, err
	}
	f := &entity.UploadedFile{
		ID:         uuid.New().String(),
		Filename:   filename,
		FileType:   ext,
		UploadedBy: uploadedBy,
		FilePath:   path,
		UploadedAt: time.Now(),
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	uc.activity.Record(uploadedBy, entity.ActivityUploadFile, fmt.Sprintf("Subió archivo: %s", filename))
	return toFileResponse(f), nil
}

// List devuelve los archivos subidos, más recientes primero.
func (uc *FileUseCase) List() ([]dto.UploadedFileResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UploadedFileResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFileResponse(f))
	}
	return out, nil
}

// Download resuelve los metadatos para descargar; registra la actividad.
// La entrega del blob queda en manos del handler (ruta + nombre original).
func (uc *FileUseCase) Download(id, actor string) (*entity.UploadedFile, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	uc.activity.Record(actor, entity.ActivityDownloadFile, fmt.Sprintf("Descargó archivo: %s", f.Filename))
	return f, nil
}

func toFileResponse(f *entity.UploadedFile) *dto.UploadedFileResponse {
	return &dto.UploadedFileResponse{
		ID:         f.ID,
		Filename:   f.Filename,
		FileType:   f.FileType,
		UploadedBy: f.UploadedBy,
		UploadedAt: f.UploadedAt,
	}
}
