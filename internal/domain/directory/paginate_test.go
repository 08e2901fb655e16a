package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_Ventanas(t *testing.T) {
	list := seq(120)

	page, info := directory.Paginate(list, 1, directory.DefaultPageSize)
	assert.Len(t, page, 50)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 1, info.From)
	assert.Equal(t, 50, info.To)

	page, info = directory.Paginate(list, 3, directory.DefaultPageSize)
	assert.Equal(t, []int{101, 102}, page[:2])
	assert.Len(t, page, 20)
	assert.Equal(t, 101, info.From)
	assert.Equal(t, 120, info.To)
}

func TestPaginate_AcotaLaPagina(t *testing.T) {
	list := seq(60)

	_, info := directory.Paginate(list, 9, 50)
	assert.Equal(t, 2, info.Page)

	_, info = directory.Paginate(list, 0, 50)
	assert.Equal(t, 1, info.Page)
}

func TestPaginate_ListaVacia(t *testing.T) {
	page, info := directory.Paginate([]int{}, 4, 50)
	assert.Empty(t, page)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Zero(t, info.From)
	assert.Zero(t, info.To)
}
