package directory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// DefaultSuggestionLimit máximo de sugerencias de búsqueda.
const DefaultSuggestionLimit = 5

// TabCounts cantidad de personas por pestaña sobre la colección completa.
func TabCounts(people []entity.Person) map[Tab]int {
	out := map[Tab]int{TabAll: len(people), TabStaff: 0, TabStudents: 0, TabGuardians: 0}
	for _, p := range people {
		out[TabOf(p)]++
	}
	return out
}

// StatusCounts KPI por estado sobre la lista de la pestaña activa.
func StatusCounts(people []entity.Person, tab Tab) map[entity.Status]int {
	out := make(map[entity.Status]int, len(entity.Statuses))
	for _, s := range entity.Statuses {
		out[s] = 0
	}
	for _, p := range FilterTab(people, tab) {
		out[p.Status]++
	}
	return out
}

// Suggestion entrada de la búsqueda predictiva.
type Suggestion struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Role     string `json:"role"`
}

// Suggestions busca term sobre la colección completa (sin filtros ni pestaña) en
// nombre, identidad y código. Respeta el orden de la colección y corta en limit.
func Suggestions(people []entity.Person, term string, limit int) []Suggestion {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Suggestion{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]Suggestion, 0, limit)
	for _, p := range people {
		if len(out) == limit {
			break
		}
		if strings.Contains(fold.String(DisplayName(p)), needle) ||
			strings.Contains(fold.String(Identity(p)), needle) ||
			strings.Contains(fold.String(SearchCode(p)), needle) {
			out = append(out, Suggestion{
				Identity: Identity(p),
				Name:     DisplayName(p),
				Code:     SearchCode(p),
				Role:     DerivedRole(p),
			})
		}
	}
	return out
}

// RoleOptions opciones del selector de rol según la pestaña. En Personal solo
// categorías de personal; en Estudiantes y Apoderados el rol es fijo.
func RoleOptions(tab Tab) []string {
	switch tab {
	case TabStaff:
		out := []string{entity.Wildcard}
		for _, c := range entity.StaffCategories {
			out = append(out, string(c))
		}
		return out
	case TabStudents, TabGuardians:
		return []string{}
	}
	out := []string{entity.Wildcard}
	for _, c := range entity.StaffCategories {
		out = append(out, string(c))
	}
	return append(out, entity.RoleStudent, entity.RoleGuardian)
}
