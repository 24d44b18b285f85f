package dto

import "time"

// UploadedFileResponse metadatos de un archivo subido.
type UploadedFileResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// FileListResponse listado de archivos (más recientes primero).
type FileListResponse struct {
	Files     []UploadedFileResponse `json:"files"`
	CanUpload bool                   `json:"can_upload"`
}
