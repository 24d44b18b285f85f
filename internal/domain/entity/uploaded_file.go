package entity

import "time"

// UploadedFile metadatos de un archivo subido. El blob vive fuera de la DB
// (disco local); FilePath apunta a él con el prefijo de timestamp que desambigua
// nombres repetidos.
type UploadedFile struct {
	ID         string
	Filename   string // nombre original, se usa al descargar
	FileType   string // csv | xlsx | xls
	UploadedBy string
	FilePath   string
	UploadedAt time.Time
}
