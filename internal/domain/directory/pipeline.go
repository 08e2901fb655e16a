package directory

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// Tab segmento de rol del listado.
type Tab string

const (
	TabAll       Tab = entity.Wildcard
	TabStaff     Tab = "Personal"
	TabStudents  Tab = "Estudiantes"
	TabGuardians Tab = "Apoderados"
)

// Tabs en el orden de la cabecera.
var Tabs = []Tab{TabAll, TabStaff, TabStudents, TabGuardians}

// ParseTab devuelve la pestaña conocida o TabAll.
func ParseTab(s string) Tab {
	for _, t := range Tabs {
		if string(t) == s {
			return t
		}
	}
	return TabAll
}

// TabOf pestaña a la que pertenece una persona.
func TabOf(p entity.Person) Tab {
	switch p.Kind {
	case entity.KindStaff:
		return TabStaff
	case entity.KindStudent:
		return TabStudents
	case entity.KindGuardian:
		return TabGuardians
	}
	return TabAll
}

// GuardianLevelPolicy define cómo interactúa el filtro de nivel con los apoderados,
// que no tienen nivel ni área.
type GuardianLevelPolicy string

const (
	// GuardianLevelInclude los apoderados pasan cualquier filtro de nivel.
	GuardianLevelInclude GuardianLevelPolicy = "include"
	// GuardianLevelExclude los apoderados quedan fuera cuando hay filtro de nivel.
	GuardianLevelExclude GuardianLevelPolicy = "exclude"
)

// SortDirection dirección de orden.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortConfig clave y dirección de orden.
type SortConfig struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orden inicial del listado.
var DefaultSort = SortConfig{Key: "fullName", Direction: Asc}

// Toggle reelegir la misma clave invierte la dirección; una clave nueva empieza ascendente.
func (s SortConfig) Toggle(key string) SortConfig {
	if s.Key == key && s.Direction == Asc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// Query entrada completa de una corrida del pipeline. SearchTerm y TagFilter de
// Filters son los términos ya confirmados tras el debounce.
type Query struct {
	Tab     Tab
	Filters entity.Filters
	Sort    *SortConfig
}

// Options configuración del motor.
type Options struct {
	EmailDomain         string
	Language            language.Tag
	GuardianLevelPolicy GuardianLevelPolicy
}

// DefaultOptions español, dominio del colegio y apoderados incluidos en el filtro de nivel.
func DefaultOptions() Options {
	return Options{
		EmailDomain:         DefaultEmailDomain,
		Language:            language.Spanish,
		GuardianLevelPolicy: GuardianLevelInclude,
	}
}

// Engine aplica el pipeline de consulta. Es seguro para uso concurrente: no guarda
// estado mutable, el collator se crea por corrida.
type Engine struct {
	opts Options
}

// NewEngine construye el motor completando valores por defecto.
func NewEngine(opts Options) *Engine {
	if opts.EmailDomain == "" {
		opts.EmailDomain = DefaultEmailDomain
	}
	if opts.Language == language.Und {
		opts.Language = language.Spanish
	}
	if opts.GuardianLevelPolicy == "" {
		opts.GuardianLevelPolicy = GuardianLevelInclude
	}
	return &Engine{opts: opts}
}

// Options devuelve la configuración efectiva.
func (e *Engine) Options() Options { return e.opts }

// Run ejecuta pestaña → filtros → búsqueda → etiquetas → orden sobre people.
// No modifica people; devuelve una lista nueva.
func (e *Engine) Run(people []entity.Person, q Query) []entity.Person {
	f := q.Filters.Normalize()
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(f.SearchTerm))
	tag := fold.String(strings.TrimSpace(f.TagFilter))

	out := make([]entity.Person, 0, len(people))
	for _, p := range FilterTab(people, q.Tab) {
		if !e.matchFields(p, f) {
			continue
		}
		if term != "" && !e.matchSearch(fold, p, term) {
			continue
		}
		if tag != "" && !matchTag(fold, p, tag) {
			continue
		}
		out = append(out, p)
	}

	if q.Sort != nil && q.Sort.Key != "" {
		e.sort(out, *q.Sort)
	}
	return out
}

// FilterTab reduce la colección a la pestaña; TabAll es la identidad.
func FilterTab(people []entity.Person, tab Tab) []entity.Person {
	if tab == TabAll || tab == "" {
		return people
	}
	out := make([]entity.Person, 0, len(people))
	for _, p := range people {
		if TabOf(p) == tab {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) matchFields(p entity.Person, f entity.Filters) bool {
	if f.Status != entity.Wildcard && string(p.Status) != f.Status {
		return false
	}
	if f.Level != entity.Wildcard && !e.matchLevel(p, f.Level) {
		return false
	}
	if f.Role != entity.Wildcard && DerivedRole(p) != f.Role {
		return false
	}
	return true
}

func (e *Engine) matchLevel(p entity.Person, level string) bool {
	switch p.Kind {
	case entity.KindStudent:
		return strings.Contains(p.Student.Grade, level)
	case entity.KindStaff:
		return strings.Contains(p.Staff.Area, level)
	case entity.KindGuardian:
		return e.opts.GuardianLevelPolicy == GuardianLevelInclude
	}
	return false
}

func (e *Engine) matchSearch(fold cases.Caser, p entity.Person, term string) bool {
	return strings.Contains(fold.String(DisplayName(p)), term) ||
		strings.Contains(fold.String(Identity(p)), term) ||
		strings.Contains(fold.String(SearchCode(p)), term) ||
		strings.Contains(fold.String(DerivedEmail(p, e.opts.EmailDomain)), term)
}

func matchTag(fold cases.Caser, p entity.Person, tag string) bool {
	for _, t := range p.Tags {
		if strings.Contains(fold.String(t), tag) {
			return true
		}
	}
	return false
}

// sort ordena de forma estable. Los nulos quedan al final en ambas direcciones;
// los empates conservan el orden previo también en descendente.
func (e *Engine) sort(list []entity.Person, cfg SortConfig) {
	col := collate.New(e.opts.Language, collate.IgnoreCase)
	values := make(map[string]SortValue, len(list))
	valueOf := func(p entity.Person) SortValue {
		id := Identity(p)
		if v, ok := values[id]; ok {
			return v
		}
		v := SortableValue(p, cfg.Key, e.opts.EmailDomain)
		values[id] = v
		return v
	}

	slices.SortStableFunc(list, func(a, b entity.Person) int {
		va, vb := valueOf(a), valueOf(b)
		switch {
		case va.IsNull() && vb.IsNull():
			return 0
		case va.IsNull():
			return 1
		case vb.IsNull():
			return -1
		}
		c := compareValues(col, va, vb)
		if cfg.Direction == Desc {
			return -c
		}
		return c
	})
}

func compareValues(col *collate.Collator, a, b SortValue) int {
	if a.IsNumber() && b.IsNumber() {
		return a.num.Cmp(b.num)
	}
	return col.CompareString(a.String(), b.String())
}
