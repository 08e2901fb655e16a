// Package redis guarda las vistas del directorio en Redis: un hash con el JSON de
// cada vista y un sorted set con el orden de creación.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// DefaultPrefix prefijo de claves por defecto.
const DefaultPrefix = "directorio"

// SavedViewStore implementa repository.SavedViewRepository sobre go-redis.
type SavedViewStore struct {
	client   *goredis.Client
	hashKey  string
	orderKey string
}

var _ repository.SavedViewRepository = (*SavedViewStore)(nil)

func NewSavedViewStore(client *goredis.Client, prefix string) *SavedViewStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &SavedViewStore{
		client:   client,
		hashKey:  prefix + ":vistas",
		orderKey: prefix + ":vistas:orden",
	}
}

// List devuelve las vistas en orden de creación.
func (s *SavedViewStore) List(ctx context.Context) ([]entity.SavedView, error) {
	ids, err := s.client.ZRange(ctx, s.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: listar vistas: %w", err)
	}
	if len(ids) == 0 {
		return []entity.SavedView{}, nil
	}
	raw, err := s.client.HMGet(ctx, s.hashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: leer vistas: %w", err)
	}
	views := make([]entity.SavedView, 0, len(raw))
	for _, r := range raw {
		str, ok := r.(string)
		if !ok {
			continue
		}
		var v entity.SavedView
		if err := json.Unmarshal([]byte(str), &v); err != nil {
			return nil, fmt.Errorf("redis: decodificar vista: %w", err)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *SavedViewStore) Add(ctx context.Context, view entity.SavedView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("redis: serializar vista: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, s.hashKey, view.ID, payload)
		pipe.ZAdd(ctx, s.orderKey, goredis.Z{Score: float64(view.CreatedAt.UnixMilli()), Member: view.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: guardar vista: %w", err)
	}
	return nil
}

// Remove elimina por ID; un ID desconocido no es error.
func (s *SavedViewStore) Remove(ctx context.Context, id string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HDel(ctx, s.hashKey, id)
		pipe.ZRem(ctx, s.orderKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: eliminar vista: %w", err)
	}
	return nil
}
