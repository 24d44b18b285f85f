// Package pdf genera el reporte de operaciones en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Completados | Demorados                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Puerto | Stock | Capacidad | Utilización %           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Planta | Stock | Capacidad                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/logitrack-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de operaciones usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOperationsReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateOperationsReport(
	report *dto.ReportResponse,
	ports []dto.PortResponse,
	plants []dto.PlantResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Operaciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("UTILIZACIÓN DE PUERTOS"))
	m.AddRows(portTableHeaderRow())
	for _, r := range portTableRows(report, ports) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("STOCK EN PLANTAS"))
	m.AddRows(plantTableHeaderRow())
	for _, r := range plantTableRows(plants) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE OPERACIONES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Seguimiento logístico de buques, puertos y plantas", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores de schedules en tres columnas.
func summaryRow(report *dto.ReportResponse) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 7,
			}),
		)
	}
	return row.New(18).Add(
		metric("SCHEDULES TOTALES", strconv.Itoa(report.TotalSchedules)),
		metric("COMPLETADOS", strconv.Itoa(report.CompletedSchedules)),
		metric("DEMORADOS", strconv.Itoa(report.DelayedSchedules)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func portTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Puerto", 5, align.Left),
		h("Stock actual", 3, align.Right),
		h("Capacidad", 2, align.Right),
		h("Utilización", 2, align.Right),
	)
}

// portTableRows: una fila por puerto, con la utilización de la consulta SQL
// cuando está disponible.
func portTableRows(report *dto.ReportResponse, ports []dto.PortResponse) []core.Row {
	utilByPort := make(map[string]string, len(report.PortUtilization))
	for _, u := range report.PortUtilization {
		utilByPort[u.Port] = u.Utilization.StringFixed(2) + "%"
	}
	result := make([]core.Row, 0, len(ports))
	for _, p := range ports {
		util, ok := utilByPort[p.Name]
		if !ok {
			util = "—"
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(strconv.Itoa(p.CurrentStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(strconv.Itoa(p.Capacity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(util, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func plantTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Planta", 6, align.Left),
		h("Stock actual", 3, align.Right),
		h("Capacidad", 3, align.Right),
	)
}

func plantTableRows(plants []dto.PlantResponse) []core.Row {
	result := make([]core.Row, 0, len(plants))
	for _, p := range plants {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(strconv.Itoa(p.CurrentStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(strconv.Itoa(p.Capacity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}
