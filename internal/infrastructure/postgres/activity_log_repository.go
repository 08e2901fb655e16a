package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo bitácora sobre PostgreSQL. Solo INSERT y SELECT.
type ActivityLogRepo struct {
	q Querier
}

func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

func (r *ActivityLogRepo) Append(ctx context.Context, e entity.ActivityLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO actividad (id, ts, actor, action, details, target_user, count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Timestamp, e.Actor, string(e.Action), e.Details, e.TargetUser, e.Count,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert actividad %s: %w", e.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert actividad: %w", err)
	}
	return nil
}

// List de la entrada más reciente a la más antigua.
func (r *ActivityLogRepo) List(ctx context.Context, f repository.ActivityLogFilter) ([]entity.ActivityLog, error) {
	query, args := buildActivityQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list actividad: %w", err)
	}
	defer rows.Close()

	out := []entity.ActivityLog{}
	for rows.Next() {
		var e entity.ActivityLog
		var action string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Actor, &action, &e.Details, &e.TargetUser, &e.Count); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		e.Action = entity.ActivityAction(action)
		out = append(out, e)
	}
	return out, rows.Err()
}

func buildActivityQuery(f repository.ActivityLogFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.Action != "" {
		args = append(args, string(f.Action))
		where = append(where, fmt.Sprintf("action = $%d", len(args)))
	}
	if f.TargetUser != "" {
		args = append(args, f.TargetUser)
		where = append(where, fmt.Sprintf("target_user = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT id, ts, actor, action, details, target_user, count FROM actividad")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY seq DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}
