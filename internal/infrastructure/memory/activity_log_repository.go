package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// ActivityLogRepository bitácora en memoria. List devuelve de la más reciente a la más antigua.
type ActivityLogRepository struct {
	mu      sync.RWMutex
	entries []entity.ActivityLog
}

var _ repository.ActivityLogRepository = (*ActivityLogRepository)(nil)

func NewActivityLogRepository(seed ...entity.ActivityLog) *ActivityLogRepository {
	return &ActivityLogRepository{entries: append([]entity.ActivityLog{}, seed...)}
}

func (r *ActivityLogRepository) Append(ctx context.Context, entry entity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, filter repository.ActivityLogFilter) ([]entity.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ActivityLog, 0)
	skipped := 0
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.TargetUser != "" && e.TargetUser != filter.TargetUser {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// Len cantidad total de entradas.
func (r *ActivityLogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
