package directory

import "slices"

// Selection conjunto de identidades seleccionadas. Es independiente de la vista:
// cambiar filtros, orden o página no lo modifica.
// No es seguro para uso concurrente; lo protege la sesión dueña.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection crea una selección vacía.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle agrega o quita id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has indica si id está seleccionado.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// SelectAllVisible con checked deja seleccionadas exactamente las identidades
// visibles; sin checked vacía la selección.
func (s *Selection) SelectAllVisible(visible []string, checked bool) {
	clear(s.ids)
	if !checked {
		return
	}
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

// AllVisibleSelected verdadero si hay filas visibles y todas están seleccionadas.
func (s *Selection) AllVisibleSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Clear vacía la selección.
func (s *Selection) Clear() {
	clear(s.ids)
}

// Len cantidad de seleccionados.
func (s *Selection) Len() int { return len(s.ids) }

// IDs identidades seleccionadas, ordenadas.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
