package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

func newStore(t *testing.T) (*SavedViewStore, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSavedViewStore(client, "test"), server
}

func TestSavedViewStore_AgregarListarEliminar(t *testing.T) {
	store, server := newStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	f := entity.DefaultFilters()
	f.Status = "Activo"
	require.NoError(t, store.Add(ctx, entity.SavedView{ID: "b", Name: "Activos", Filters: f, CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Add(ctx, entity.SavedView{ID: "a", Name: "Todos", Filters: entity.DefaultFilters(), CreatedAt: base}))

	views, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "a", views[0].ID)
	assert.Equal(t, "Activo", views[1].Filters.Status)
	assert.True(t, server.Exists("test:vistas"))

	require.NoError(t, store.Remove(ctx, "a"))
	require.NoError(t, store.Remove(ctx, "no-existe"))
	views, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Activos", views[0].Name)
}

func TestSavedViewStore_ListaVacia(t *testing.T) {
	store, _ := newStore(t)
	views, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestConnect(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client, err := Connect(context.Background(), "redis://"+server.Addr())
	require.NoError(t, err)
	defer client.Close()

	_, err = Connect(context.Background(), "")
	assert.Error(t, err)
}
