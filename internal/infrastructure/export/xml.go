package export

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
)

var _ Renderer = (*XMLRenderer)(nil)

// XMLRenderer documento con raíz plural (nombre del dataset) y un elemento por
// fila, con un hijo por columna.
type XMLRenderer struct{}

func (r *XMLRenderer) Render(ds *usecase.Dataset) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(ds.Name)

	// "stock_levels" -> "stock_level", "schedules" -> "schedule"
	itemName := strings.TrimSuffix(ds.Name, "s")
	for _, row := range ds.Rows {
		item := root.CreateElement(itemName)
		for i, h := range ds.Headers {
			if i >= len(row) {
				break
			}
			item.CreateElement(h).SetText(row[i])
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar xml: %w", err)
	}
	return out, nil
}

func (r *XMLRenderer) ContentType() string { return "application/xml" }
func (r *XMLRenderer) Extension() string   { return "xml" }
