package export

import (
	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// Options configuración común de los exportadores.
type Options struct {
	EmailDomain string
	// Detailed agrega Nivel/Área y Relación al registro plano.
	Detailed bool
	// Filename nombre base sin extensión.
	Filename string
}

const defaultFilename = "export_usuarios_seleccionados"

type column struct {
	header string
	tag    string
	value  func(p entity.Person, domain string) string
}

var baseColumns = []column{
	{"ID", "id", func(p entity.Person, _ string) string { return directory.Identity(p) }},
	{"Nombre", "nombre", func(p entity.Person, _ string) string { return directory.DisplayName(p) }},
	{"Email", "email", func(p entity.Person, d string) string { return directory.DerivedEmail(p, d) }},
	{"Roles", "rol", func(p entity.Person, _ string) string { return directory.DerivedRole(p) }},
	{"Estado", "estado", func(p entity.Person, _ string) string { return string(p.Status) }},
}

var detailColumns = []column{
	{"Nivel/Área", "nivel", func(p entity.Person, _ string) string { return directory.Level(p) }},
	{"Relación", "relacion", func(p entity.Person, _ string) string {
		if p.Kind == entity.KindGuardian {
			return p.Guardian.Relation
		}
		return ""
	}},
}

func (o Options) columns() []column {
	if !o.Detailed {
		return baseColumns
	}
	out := make([]column, 0, len(baseColumns)+len(detailColumns))
	out = append(out, baseColumns...)
	return append(out, detailColumns...)
}

func (o Options) filename(ext string) string {
	name := o.Filename
	if name == "" {
		name = defaultFilename
	}
	return name + ext
}
