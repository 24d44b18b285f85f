package export

import (
	"bytes"
	"fmt"

	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/xuri/excelize/v2"
)

var _ Renderer = (*XLSXRenderer)(nil)

// XLSXRenderer libro con una hoja: encabezados en la fila 1, datos debajo.
type XLSXRenderer struct{}

func (r *XLSXRenderer) Render(ds *usecase.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, h := range ds.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado xlsx: %w", err)
		}
	}
	for rowIdx, row := range ds.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("celda de dato: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila xlsx: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *XLSXRenderer) Extension() string { return "xlsx" }
