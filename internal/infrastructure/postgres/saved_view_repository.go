package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

var _ repository.SavedViewRepository = (*SavedViewRepo)(nil)

// SavedViewRepo vistas guardadas sobre PostgreSQL; los filtros van como JSONB.
type SavedViewRepo struct {
	q Querier
}

func NewSavedViewRepository(q Querier) *SavedViewRepo {
	return &SavedViewRepo{q: q}
}

// List devuelve las vistas en orden de creación.
func (r *SavedViewRepo) List(ctx context.Context) ([]entity.SavedView, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, filters, created_at FROM vistas_guardadas ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list vistas: %w", err)
	}
	defer rows.Close()

	out := []entity.SavedView{}
	for rows.Next() {
		var v entity.SavedView
		var raw []byte
		if err := rows.Scan(&v.ID, &v.Name, &raw, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vista: %w", err)
		}
		if err := json.Unmarshal(raw, &v.Filters); err != nil {
			return nil, fmt.Errorf("decode filtros de vista %s: %w", v.ID, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *SavedViewRepo) Add(ctx context.Context, view entity.SavedView) error {
	filters, err := json.Marshal(view.Filters)
	if err != nil {
		return fmt.Errorf("encode filtros: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO vistas_guardadas (id, name, filters, created_at) VALUES ($1, $2, $3, $4)`,
		view.ID, view.Name, filters, view.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vista: %w", err)
	}
	return nil
}

// Remove elimina por ID; un ID desconocido no es error.
func (r *SavedViewRepo) Remove(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vistas_guardadas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vista: %w", err)
	}
	return nil
}
