package directory

import (
	"net/url"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// Nombres de los parámetros de URL que reflejan la consulta.
const (
	ParamSearch = "q"
	ParamTab    = "tab"
	ParamLevel  = "nivel"
	ParamStatus = "status"
	ParamRole   = "rol"
	ParamTags   = "tags"
)

// ParseParams lee filtros y pestaña desde la query string. Lo ausente queda en su
// valor por defecto; una pestaña desconocida se trata como Todos.
func ParseParams(v url.Values) (entity.Filters, Tab) {
	f := entity.DefaultFilters()
	f.SearchTerm = v.Get(ParamSearch)
	f.TagFilter = v.Get(ParamTags)
	if s := v.Get(ParamLevel); s != "" {
		f.Level = s
	}
	if s := v.Get(ParamStatus); s != "" {
		f.Status = s
	}
	if s := v.Get(ParamRole); s != "" {
		f.Role = s
	}
	return f, ParseTab(v.Get(ParamTab))
}

// EncodeParams inverso de ParseParams. Omite valores vacíos y comodines para que
// la URL de la vista por defecto quede limpia.
func EncodeParams(f entity.Filters, tab Tab) url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" && val != entity.Wildcard {
			v.Set(key, val)
		}
	}
	set(ParamSearch, f.SearchTerm)
	set(ParamTab, string(tab))
	set(ParamLevel, f.Level)
	set(ParamStatus, f.Status)
	set(ParamRole, f.Role)
	set(ParamTags, f.TagFilter)
	return v
}
