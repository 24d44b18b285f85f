package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// FileRepository metadatos de archivos subidos. El blob vive fuera (disco local).
type FileRepository interface {
	Create(f *entity.UploadedFile) error
	GetByID(id string) (*entity.UploadedFile, error)
	List() ([]*entity.UploadedFile, error)
}
