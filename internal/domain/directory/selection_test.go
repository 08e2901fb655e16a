package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
)

func TestSelection_ToggleEsInvolutivo(t *testing.T) {
	s := directory.NewSelection()
	s.Toggle("a")
	assert.True(t, s.Has("a"))
	s.Toggle("a")
	assert.False(t, s.Has("a"))
	assert.Zero(t, s.Len())
}

func TestSelection_SeleccionarPaginaReemplaza(t *testing.T) {
	s := directory.NewSelection()
	s.Toggle("x")

	s.SelectAllVisible([]string{"a", "b"}, true)
	assert.Equal(t, []string{"a", "b"}, s.IDs(), "queda exactamente la página visible")
	assert.True(t, s.AllVisibleSelected([]string{"a", "b"}))
	assert.False(t, s.AllVisibleSelected([]string{"a", "b", "c"}))

	s.SelectAllVisible([]string{"a", "b"}, false)
	assert.Empty(t, s.IDs(), "desmarcar vacía toda la selección")
}

func TestSelection_PaginaVaciaNoEstaSeleccionada(t *testing.T) {
	s := directory.NewSelection()
	s.Toggle("a")
	assert.False(t, s.AllVisibleSelected(nil))

	s.Clear()
	assert.Empty(t, s.IDs())
}
