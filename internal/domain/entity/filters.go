package entity

import "time"

// Wildcard valor comodín de los selectores de filtro y de pestaña.
const Wildcard = "Todos"

// Filters configuración de filtros del listado de usuarios.
type Filters struct {
	SearchTerm string `json:"search_term"`
	TagFilter  string `json:"tag_filter"`
	Status     string `json:"status"`
	Level      string `json:"level"`
	Role       string `json:"role"`
}

// DefaultFilters filtros vacíos ("Limpiar filtros").
func DefaultFilters() Filters {
	return Filters{Status: Wildcard, Level: Wildcard, Role: Wildcard}
}

// Normalize reemplaza valores vacíos de los selectores por el comodín.
func (f Filters) Normalize() Filters {
	if f.Status == "" {
		f.Status = Wildcard
	}
	if f.Level == "" {
		f.Level = Wildcard
	}
	if f.Role == "" {
		f.Role = Wildcard
	}
	return f
}

// SavedView instantánea con nombre de una configuración de filtros.
type SavedView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Filters   Filters   `json:"filters"`
	CreatedAt time.Time `json:"created_at"`
}
