package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// CSVExporter exporta el registro plano (ID, Nombre, Email, Roles, Estado) en CSV UTF-8.
type CSVExporter struct {
	opts Options
}

var _ appdir.Exporter = (*CSVExporter)(nil)

func NewCSVExporter(opts Options) *CSVExporter {
	return &CSVExporter{opts: opts}
}

func (e *CSVExporter) Export(ctx context.Context, people []entity.Person) (appdir.Artifact, error) {
	cols := e.opts.columns()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.header
	}
	if err := w.Write(header); err != nil {
		return appdir.Artifact{}, fmt.Errorf("export csv: %w", err)
	}
	for _, p := range people {
		if err := ctx.Err(); err != nil {
			return appdir.Artifact{}, err
		}
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.value(p, e.opts.EmailDomain)
		}
		if err := w.Write(row); err != nil {
			return appdir.Artifact{}, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return appdir.Artifact{}, fmt.Errorf("export csv: %w", err)
	}
	return appdir.Artifact{
		Filename:    e.opts.filename(".csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
