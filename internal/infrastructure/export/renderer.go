// Package export serializa datasets tabulares a los formatos de descarga
// (csv, xlsx, xml).
package export

import (
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
)

// Formatos soportados.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatXML  = "xml"
)

// Renderer serializa un dataset a un formato concreto.
type Renderer interface {
	Render(ds *usecase.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat resuelve el renderer para el formato pedido. Formato vacío es csv.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", FormatCSV:
		return &CSVRenderer{}, nil
	case FormatXLSX:
		return &XLSXRenderer{}, nil
	case FormatXML:
		return &XMLRenderer{}, nil
	}
	return nil, domain.ErrInvalidInput
}
