package directory_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

func TestParseParams_ValoresPorDefecto(t *testing.T) {
	f, tab := directory.ParseParams(url.Values{})
	assert.Equal(t, entity.DefaultFilters(), f)
	assert.Equal(t, directory.TabAll, tab)
}

func TestParseParams_LeeTodosLosCampos(t *testing.T) {
	v, err := url.ParseQuery("q=ana&tab=Personal&nivel=5to&status=Activo&rol=Docente&tags=tutor")
	assert.NoError(t, err)

	f, tab := directory.ParseParams(v)
	assert.Equal(t, directory.TabStaff, tab)
	assert.Equal(t, entity.Filters{SearchTerm: "ana", TagFilter: "tutor", Status: "Activo", Level: "5to", Role: "Docente"}, f)
	assert.Equal(t, v, directory.EncodeParams(f, tab))
}

func TestEncodeParams_OmiteComodines(t *testing.T) {
	v := directory.EncodeParams(entity.DefaultFilters(), directory.TabAll)
	assert.Empty(t, v.Encode())
}

func TestParseParams_PestanaDesconocida(t *testing.T) {
	_, tab := directory.ParseParams(url.Values{"tab": {"Alumnos"}})
	assert.Equal(t, directory.TabAll, tab)
}
