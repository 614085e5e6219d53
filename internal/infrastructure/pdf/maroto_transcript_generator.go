// Package pdf genera el certificado de notas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Departamento          │  CERTIFICADO + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTUDIANTE: Nombre + Código / Curso / Programa              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Semestre | Asignatura | Cr | Parcial | Final | Nota  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Créditos cursados / aprobados / Promedio           │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Academico-api/internal/application/ports"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorFail    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ ports.TranscriptPDFGenerator = (*MarotoTranscriptGenerator)(nil)

// MarotoTranscriptGenerator implementa ports.TranscriptPDFGenerator usando Maroto v2.
type MarotoTranscriptGenerator struct{}

// NewMarotoTranscriptGenerator construye el generador.
func NewMarotoTranscriptGenerator() *MarotoTranscriptGenerator { return &MarotoTranscriptGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoTranscriptGenerator) Generate(data ports.TranscriptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certificado de notas", true).
		WithAuthor(data.Department, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(studentRow(data.Student))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(data.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin asignaturas calificadas.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: departamento (izq) y título + fecha de emisión (der).
func headerRow(data ports.TranscriptData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Department, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Oficina de Registro Académico", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CERTIFICADO DE NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+data.IssuedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// studentRow: datos del estudiante.
func studentRow(s entity.Student) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("ESTUDIANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", s.FullName, s.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Curso: %s   |   Programa: %s   |   Ingreso: %d   |   Estado: %s",
				nonEmpty(s.ClassName, "—"),
				nonEmpty(s.Major, "—"),
				s.EnrollmentYear,
				s.Status,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de asignaturas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Semestre", 2, align.Left),
		h("Asignatura", 4, align.Left),
		h("Cr", 1, align.Center),
		h("Parcial", 1, align.Right),
		h("Final", 1, align.Right),
		h("Nota", 2, align.Right),
		h("Letra", 1, align.Center),
	)
}

// tableLineRows: una fila por asignatura; las reprobadas en rojo.
func tableLineRows(lines []entity.TranscriptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		color := (*props.Color)(nil)
		if !l.Passed {
			color = colorFail
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color}))
		}
		result = append(result, row.New(7).Add(
			cell(l.Semester, 2, align.Left),
			cell(l.CourseCode+" "+l.CourseName, 4, align.Left),
			cell(fmt.Sprintf("%d", l.Credits), 1, align.Center),
			cell(l.Midterm.StringFixed(1), 1, align.Right),
			cell(l.Final.StringFixed(1), 1, align.Right),
			cell(l.Total.StringFixed(1), 2, align.Right),
			cell(l.Letter, 1, align.Center),
		))
	}
	return result
}

// totalsRow: créditos y promedio ponderado.
func totalsRow(data ports.TranscriptData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(4).Add(
			label("Créditos cursados:"),
			text.New("Créditos aprobados:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("PROMEDIO PONDERADO:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 12, Color: colorPrimary}),
		),
		col.New(2).Add(
			value(fmt.Sprintf("%d", data.CreditsAttempted)),
			text.New(fmt.Sprintf("%d", data.CreditsEarned), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6}),
			text.New(data.GPA.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary}),
		),
	)
}

// footerRow: QR con los datos de verificación y leyenda.
func footerRow(data ports.TranscriptData) core.Row {
	qr := fmt.Sprintf("CERT|%s|%s|%s|%s",
		data.Department, data.Student.ID, data.IssuedAt.Format("20060102T150405Z"), data.GPA.StringFixed(2))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escala 0-10. Nota = 30% parcial + 70% final. Aprobado con 4.0 o más.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("La versión XML de este certificado incluye un digest SHA-256 verificable.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
