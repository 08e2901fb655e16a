package repository

import (
	"context"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// PersonRepository define el puerto de persistencia del directorio (DIP).
// La identidad (DNI o número de documento) es la clave única.
type PersonRepository interface {
	ListAll(ctx context.Context) ([]entity.Person, error)
	Save(ctx context.Context, p entity.Person) error
	UpdateStatus(ctx context.Context, ids []string, status entity.Status) error
}

// SavedViewRepository almacén de vistas guardadas.
type SavedViewRepository interface {
	List(ctx context.Context) ([]entity.SavedView, error)
	Add(ctx context.Context, view entity.SavedView) error
	Remove(ctx context.Context, id string) error
}

// ActivityLogFilter acota las consultas de la bitácora.
type ActivityLogFilter struct {
	Action     entity.ActivityAction
	TargetUser string
	Limit      int
	Offset     int
}

// ActivityLogRepository bitácora de actividad, solo append.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry entity.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]entity.ActivityLog, error)
}
