package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/memory"
)

func TestSeedPeople_IdentidadesUnicas(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range memory.SeedPeople() {
		id := directory.Identity(p)
		require.False(t, seen[id], "identidad repetida %s", id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), directory.DefaultPageSize, "el seed debe ocupar más de una página")
}

func TestPersonRepository_GuardarYActualizarEstado(t *testing.T) {
	ctx := context.Background()
	repo, err := memory.NewPersonRepository(memory.SeedPeople()[:3])
	require.NoError(t, err)

	nuevo := entity.NewGuardian(entity.Guardian{DNI: "19999999", Name: "Nuevo"}, entity.StatusPending)
	require.NoError(t, repo.Save(ctx, nuevo))
	require.NoError(t, repo.UpdateStatus(ctx, []string{"19999999"}, entity.StatusActive))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "19999999", directory.Identity(all[0]), "las altas se anteponen")
	assert.Equal(t, entity.StatusActive, all[0].Status)
}

func TestPersonRepository_RechazaDuplicados(t *testing.T) {
	p := memory.SeedPeople()[0]
	_, err := memory.NewPersonRepository([]entity.Person{p, p})
	assert.Error(t, err)
}

func TestActivityLogRepository_FiltroYPaginado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewActivityLogRepository()
	for i, a := range []entity.ActivityAction{entity.ActionCreate, entity.ActionExport, entity.ActionCreate} {
		require.NoError(t, repo.Append(ctx, entity.ActivityLog{ID: string(rune('a' + i)), Action: a}))
	}

	got, err := repo.List(ctx, repository.ActivityLogFilter{Action: entity.ActionCreate})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID, "la más reciente primero")

	got, err = repo.List(ctx, repository.ActivityLogFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestSavedViewRepository_AgregarYQuitar(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSavedViewRepository()
	require.NoError(t, repo.Add(ctx, entity.SavedView{ID: "v1", Name: "Pendientes"}))
	require.NoError(t, repo.Add(ctx, entity.SavedView{ID: "v2", Name: "Docentes"}))
	require.NoError(t, repo.Remove(ctx, "v1"))
	require.NoError(t, repo.Remove(ctx, "no-existe"))

	views, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Docentes", views[0].Name)
}
