// Package pdf genera los carnets de estudiantes en PDF.
//
// Layout de cada carnet (uno debajo de otro en páginas A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  COLEGIO                              │  CARNET ESTUDIANTIL │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Nombre completo                      │                     │
//	│  Código / Documento                   │        QR           │
//	│  Grado y sección / Estado             │                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain"
	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	defaultSchoolName = "Colegio"
	carnetFilename    = "carnets.pdf"
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CarnetGenerator implementa appdir.CarnetGenerator usando Maroto v2.
type CarnetGenerator struct {
	schoolName string
}

var _ appdir.CarnetGenerator = (*CarnetGenerator)(nil)

// NewCarnetGenerator construye el generador. schoolName aparece en la cabecera de cada carnet.
func NewCarnetGenerator(schoolName string) *CarnetGenerator {
	if schoolName == "" {
		schoolName = defaultSchoolName
	}
	return &CarnetGenerator{schoolName: schoolName}
}

// GenerateCarnets genera un carnet por estudiante; las demás variantes se ignoran.
// Sin estudiantes devuelve domain.ErrActionNotApplicable.
func (g *CarnetGenerator) GenerateCarnets(ctx context.Context, people []entity.Person) (appdir.Artifact, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carnets estudiantiles", true).
		WithAuthor(g.schoolName, true).
		Build()

	m := maroto.New(cfg)

	count := 0
	for _, p := range people {
		if p.Kind != entity.KindStudent {
			continue
		}
		if err := ctx.Err(); err != nil {
			return appdir.Artifact{}, err
		}
		m.AddRows(g.carnetRows(p)...)
		count++
	}
	if count == 0 {
		return appdir.Artifact{}, domain.ErrActionNotApplicable
	}

	doc, err := m.Generate()
	if err != nil {
		return appdir.Artifact{}, fmt.Errorf("pdf: generar carnets: %w", err)
	}
	return appdir.Artifact{
		Filename:    carnetFilename,
		ContentType: "application/pdf",
		Data:        doc.GetBytes(),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *CarnetGenerator) carnetRows(p entity.Person) []core.Row {
	s := p.Student
	return []core.Row{
		headerRow(g.schoolName),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
		bodyRow(p),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		row.New(2),
		footerRow(s.DocumentNumber),
		row.New(6),
	}
}

// headerRow: nombre del colegio (izq) y título (der).
func headerRow(school string) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New(school, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("CARNET ESTUDIANTIL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// bodyRow: datos del estudiante y QR con el código de estudiante.
func bodyRow(p entity.Person) core.Row {
	s := p.Student
	return row.New(40).Add(
		col.New(8).Add(
			text.New(directory.DisplayName(p), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3,
			}),
			text.New("Código: "+nonEmpty(s.StudentCode, "-"), props.Text{
				Size: 9, Top: 12,
			}),
			text.New("Grado y sección: "+nonEmpty(directory.Level(p), "-"), props.Text{
				Size: 9, Top: 19,
			}),
			text.New("Estado: "+string(p.Status), props.Text{
				Size: 9, Top: 26, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(nonEmpty(s.StudentCode, s.DocumentNumber), props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// footerRow: documento de identidad.
func footerRow(document string) core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New("Documento: "+document, props.Text{Size: 7, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
