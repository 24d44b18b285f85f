package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

var _ Renderer = (*CSVRenderer)(nil)

// CSVRenderer fila de encabezados seguida de las filas de datos.
type CSVRenderer struct{}

func (r *CSVRenderer) Render(ds *usecase.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ds.Headers); err != nil {
		return nil, fmt.Errorf("escribir encabezados csv: %w", err)
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("serializar csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CSVRenderer) ContentType() string { return "text/csv" }
func (r *CSVRenderer) Extension() string   { return "csv" }
