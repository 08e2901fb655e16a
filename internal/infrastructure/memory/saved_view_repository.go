package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// SavedViewRepository vistas guardadas en memoria, en orden de creación.
type SavedViewRepository struct {
	mu    sync.RWMutex
	views []entity.SavedView
}

var _ repository.SavedViewRepository = (*SavedViewRepository)(nil)

func NewSavedViewRepository() *SavedViewRepository {
	return &SavedViewRepository{}
}

func (r *SavedViewRepository) List(ctx context.Context) ([]entity.SavedView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.SavedView{}, r.views...), nil
}

func (r *SavedViewRepository) Add(ctx context.Context, view entity.SavedView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
	return nil
}

// Remove elimina por ID; un ID desconocido no es error.
func (r *SavedViewRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.views {
		if v.ID == id {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return nil
		}
	}
	return nil
}
