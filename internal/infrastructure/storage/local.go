package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

var _ usecase.BlobStore = (*LocalStore)(nil)

// LocalStore guarda blobs en disco local bajo un directorio base. El nombre
// almacenado lleva prefijo de timestamp para que dos subidas con el mismo
// nombre no se pisen.
type LocalStore struct {
	baseDir string
}

// NewLocalStore crea el directorio base si no existe.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save persiste el contenido y devuelve la ruta almacenada.
func (s *LocalStore) Save(filename string, content io.Reader) (string, error) {
	// Base() descarta cualquier componente de ruta que venga en el nombre.
	stored := time.Now().Format("20060102_150405") + "_" + filepath.Base(filename)
	path := filepath.Join(s.baseDir, stored)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return path, nil
}
