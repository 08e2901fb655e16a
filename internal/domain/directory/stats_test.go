package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

func TestTabCounts(t *testing.T) {
	counts := directory.TabCounts(sampleDirectory())
	assert.Equal(t, 8, counts[directory.TabAll])
	assert.Equal(t, 3, counts[directory.TabStaff])
	assert.Equal(t, 3, counts[directory.TabStudents])
	assert.Equal(t, 2, counts[directory.TabGuardians])
}

func TestStatusCounts_PorPestana(t *testing.T) {
	counts := directory.StatusCounts(sampleDirectory(), directory.TabStaff)
	assert.Equal(t, 2, counts[entity.StatusActive])
	assert.Equal(t, 1, counts[entity.StatusSuspended])
	assert.Equal(t, 0, counts[entity.StatusGraduated])
}

func TestSuggestions_LimiteYColeccionCompleta(t *testing.T) {
	people := sampleDirectory()

	got := directory.Suggestions(people, "QUISPE", 0)
	assert.Len(t, got, 2)
	assert.Equal(t, "Ángel Quispe", got[0].Name)
	assert.Equal(t, entity.RoleGuardian, got[1].Role)

	assert.Len(t, directory.Suggestions(people, "0000", 2), 2)
	assert.Empty(t, directory.Suggestions(people, "   ", 5))
}

func TestRoleOptions(t *testing.T) {
	assert.Equal(t, []string{"Todos", "Director", "Administrativo", "Docente", "Apoyo"}, directory.RoleOptions(directory.TabStaff))
	assert.Empty(t, directory.RoleOptions(directory.TabStudents))
	assert.Contains(t, directory.RoleOptions(directory.TabAll), entity.RoleGuardian)
}
