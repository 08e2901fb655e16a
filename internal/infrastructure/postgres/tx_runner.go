package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	people *PersonRepo,
	views *SavedViewRepo,
	logs *ActivityLogRepo,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPersonRepository(tx), NewSavedViewRepository(tx), NewActivityLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Seed carga people en una sola transacción cuando la tabla está vacía.
// Devuelve cuántas personas insertó.
func (r *TxRunner) Seed(ctx context.Context, people []entity.Person) (int, error) {
	inserted := 0
	err := r.Run(ctx, func(repo *PersonRepo, _ *SavedViewRepo, _ *ActivityLogRepo) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, p := range people {
			if err := repo.Insert(ctx, p); err != nil {
				return fmt.Errorf("seed %s: %w", directory.Identity(p), err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
