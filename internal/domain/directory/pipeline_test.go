package directory_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

func newEngine() *directory.Engine {
	return directory.NewEngine(directory.DefaultOptions())
}

func TestRun_FiltrosPorDefectoDevuelvenTodo(t *testing.T) {
	people := sampleDirectory()
	out := newEngine().Run(people, directory.Query{Tab: directory.TabAll, Filters: entity.DefaultFilters()})

	assert.Equal(t, identities(people), identities(out), "sin orden se conserva el orden de la colección")
}

func TestRun_NoModificaLaEntrada(t *testing.T) {
	people := sampleDirectory()
	before := identities(people)
	sort := directory.SortConfig{Key: "name", Direction: directory.Desc}

	newEngine().Run(people, directory.Query{Filters: entity.DefaultFilters(), Sort: &sort})

	assert.Equal(t, before, identities(people))
}

func TestRun_EtapasSonSubconjuntos(t *testing.T) {
	people := sampleDirectory()
	f := entity.DefaultFilters()
	f.Status = string(entity.StatusActive)
	f.SearchTerm = "quispe"

	out := newEngine().Run(people, directory.Query{Tab: directory.TabAll, Filters: f})

	assert.Equal(t, []string{"70000001", "10000001"}, identities(out))
	for _, p := range out {
		assert.Equal(t, entity.StatusActive, p.Status)
	}
}

func TestRun_Pestanas(t *testing.T) {
	people := sampleDirectory()
	e := newEngine()
	f := entity.DefaultFilters()

	assert.Len(t, e.Run(people, directory.Query{Tab: directory.TabStaff, Filters: f}), 3)
	assert.Len(t, e.Run(people, directory.Query{Tab: directory.TabStudents, Filters: f}), 3)
	assert.Len(t, e.Run(people, directory.Query{Tab: directory.TabGuardians, Filters: f}), 2)
}

func TestRun_FiltroDeNivel(t *testing.T) {
	people := sampleDirectory()
	f := entity.DefaultFilters()
	f.Level = "5to"

	t.Run("apoderados incluidos por defecto", func(t *testing.T) {
		out := newEngine().Run(people, directory.Query{Filters: f})
		assert.Equal(t, []string{"70000001", "70000003", "10000001", "10000002"}, identities(out))
	})

	t.Run("apoderados excluidos por política", func(t *testing.T) {
		opts := directory.DefaultOptions()
		opts.GuardianLevelPolicy = directory.GuardianLevelExclude
		out := directory.NewEngine(opts).Run(people, directory.Query{Filters: f})
		assert.Equal(t, []string{"70000001", "70000003"}, identities(out))
	})

	t.Run("área del personal", func(t *testing.T) {
		f := entity.DefaultFilters()
		f.Level = "Mate"
		out := newEngine().Run(people, directory.Query{Tab: directory.TabStaff, Filters: f})
		assert.Equal(t, []string{"40000001"}, identities(out))
	})
}

func TestRun_FiltroDeRol(t *testing.T) {
	f := entity.DefaultFilters()
	f.Role = "Director"
	out := newEngine().Run(sampleDirectory(), directory.Query{Filters: f})
	assert.Equal(t, []string{"40000002"}, identities(out))

	f.Role = entity.RoleGuardian
	out = newEngine().Run(sampleDirectory(), directory.Query{Filters: f})
	assert.Equal(t, []string{"10000001", "10000002"}, identities(out))
}

func TestRun_BusquedaIgnoraMayusculas(t *testing.T) {
	people := sampleDirectory()
	e := newEngine()
	for _, term := range []string{"ÁNGEL", "ángel", "70000001", "000070000001", "70000001@colegio"} {
		f := entity.DefaultFilters()
		f.SearchTerm = term
		out := e.Run(people, directory.Query{Filters: f})
		require.NotEmpty(t, out, "término %q", term)
		assert.Equal(t, "70000001", identities(out)[0], "término %q", term)
	}

	f := entity.DefaultFilters()
	f.SearchTerm = "hotmail"
	assert.Equal(t, []string{"10000002"}, identities(e.Run(people, directory.Query{Filters: f})),
		"el correo del apoderado participa en la búsqueda")
}

func TestRun_BusquedaPorEtiqueta(t *testing.T) {
	f := entity.DefaultFilters()
	f.TagFilter = "riesgo"
	out := newEngine().Run(sampleDirectory(), directory.Query{Filters: f})
	assert.Equal(t, []string{"70000003"}, identities(out))
}

func TestRun_OrdenColadoEnEspanol(t *testing.T) {
	sort := directory.SortConfig{Key: "name", Direction: directory.Asc}
	out := newEngine().Run(sampleDirectory(), directory.Query{Tab: directory.TabStudents, Filters: entity.DefaultFilters(), Sort: &sort})

	assert.Equal(t, []string{"70000001", "70000002", "70000003"}, identities(out),
		"Ángel antes que Beatriz y Ñuflo al final")
}

func TestRun_OrdenNumericoYNulosAlFinal(t *testing.T) {
	people := sampleDirectory()
	e := newEngine()

	asc := directory.SortConfig{Key: "averageGrade", Direction: directory.Asc}
	out := e.Run(people, directory.Query{Filters: entity.DefaultFilters(), Sort: &asc})
	assert.Equal(t, []string{"70000003", "70000001", "70000002"}, identities(out)[:3])

	desc := asc.Toggle("averageGrade")
	require.Equal(t, directory.Desc, desc.Direction)
	out = e.Run(people, directory.Query{Filters: entity.DefaultFilters(), Sort: &desc})
	assert.Equal(t, []string{"70000002", "70000001", "70000003"}, identities(out)[:3])
	assert.Equal(t, []string{"40000001", "40000002", "40000003", "10000001", "10000002"}, identities(out)[3:],
		"los nulos quedan al final y conservan el orden relativo")
}

func TestRun_OrdenEstableEnEmpates(t *testing.T) {
	sort := directory.SortConfig{Key: "status", Direction: directory.Asc}
	out := newEngine().Run(sampleDirectory(), directory.Query{Filters: entity.DefaultFilters(), Sort: &sort})

	var actives []string
	for _, p := range out {
		if p.Status == entity.StatusActive {
			actives = append(actives, directory.Identity(p))
		}
	}
	assert.Equal(t, []string{"40000001", "40000002", "70000001", "70000003", "10000001"}, actives)
}

func TestRun_OrdenEstableEnEmpatesDescendente(t *testing.T) {
	sort := directory.SortConfig{Key: "status", Direction: directory.Desc}
	out := newEngine().Run(sampleDirectory(), directory.Query{Filters: entity.DefaultFilters(), Sort: &sort})

	var actives []string
	for _, p := range out {
		if p.Status == entity.StatusActive {
			actives = append(actives, directory.Identity(p))
		}
	}
	assert.Equal(t, []string{"40000001", "40000002", "70000001", "70000003", "10000001"}, actives,
		"el descendente invierte la comparación, no el orden de los empates")
}

func TestRun_DescendenteEsInversoConClavesDistintas(t *testing.T) {
	e := newEngine()
	asc := directory.SortConfig{Key: "identity", Direction: directory.Asc}
	desc := directory.SortConfig{Key: "identity", Direction: directory.Desc}

	up := identities(e.Run(sampleDirectory(), directory.Query{Filters: entity.DefaultFilters(), Sort: &asc}))
	down := identities(e.Run(sampleDirectory(), directory.Query{Filters: entity.DefaultFilters(), Sort: &desc}))

	require.Len(t, up, len(sampleDirectory()))
	reversed := slices.Clone(up)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, down)
	assert.True(t, slices.IsSorted(up))
}

func TestSortConfig_Toggle(t *testing.T) {
	s := directory.SortConfig{Key: "name", Direction: directory.Asc}

	s = s.Toggle("name")
	assert.Equal(t, directory.Desc, s.Direction)
	s = s.Toggle("name")
	assert.Equal(t, directory.Asc, s.Direction)

	s = s.Toggle("name").Toggle("email")
	assert.Equal(t, directory.SortConfig{Key: "email", Direction: directory.Asc}, s,
		"una clave nueva siempre empieza ascendente")
}
