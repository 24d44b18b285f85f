package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo metadatos de archivos subidos sobre PostgreSQL.
type FileRepo struct {
	q Querier
}

func NewFileRepository(q Querier) *FileRepo {
	return &FileRepo{q: q}
}

func (r *FileRepo) Create(f *entity.UploadedFile) error {
	query := `
		INSERT INTO uploaded_files (id, filename, file_type, uploaded_by, file_path, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Filename, f.FileType, f.UploadedBy, f.FilePath, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert uploaded file: %w", err)
	}
	return nil
}

func (r *FileRepo) GetByID(id string) (*entity.UploadedFile, error) {
	query := `
		SELECT id, filename, file_type, uploaded_by, file_path, uploaded_at
		FROM uploaded_files WHERE id = $1`
	var f entity.UploadedFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Filename, &f.FileType, &f.UploadedBy, &f.FilePath, &f.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uploaded file: %w", err)
	}
	return &f, nil
}

func (r *FileRepo) List() ([]*entity.UploadedFile, error) {
	query := `
		SELECT id, filename, file_type, uploaded_by, file_path, uploaded_at
		FROM uploaded_files
		ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list uploaded files: %w", err)
	}
	defer rows.Close()
	var list []*entity.UploadedFile
	for rows.Next() {
		var f entity.UploadedFile
		if err := rows.Scan(&f.ID, &f.Filename, &f.FileType, &f.UploadedBy, &f.FilePath, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan uploaded file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
