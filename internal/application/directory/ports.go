// Package directory orquesta el directorio escolar: sesiones de consulta con
// búsqueda diferida, selección y acciones sobre usuarios con confirmación previa.
package directory

import (
	"context"
	"net/url"
	"time"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// SavedViewStore almacén de vistas guardadas (memoria, Redis o Postgres).
type SavedViewStore = repository.SavedViewRepository

// NotificationAction enlace opcional que acompaña a una notificación.
type NotificationAction struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Notifier colaborador de notificaciones. El resultado no afecta a la acción que lo invoca.
type Notifier interface {
	Notify(ctx context.Context, message string, action *NotificationAction) error
}

// Artifact archivo generado para descarga.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	// Digest huella del contenido cuando el formato la calcula (vacío si no).
	Digest string
}

// Exporter genera el archivo de exportación de un conjunto de personas.
type Exporter interface {
	Export(ctx context.Context, people []entity.Person) (Artifact, error)
}

// CarnetGenerator genera carnets para estudiantes.
type CarnetGenerator interface {
	GenerateCarnets(ctx context.Context, people []entity.Person) (Artifact, error)
}

// ConfirmationRequest datos que se muestran al pedir confirmación.
type ConfirmationRequest struct {
	Title          string
	Message        string
	ConfirmText    string
	RequiresReason bool
}

// Decision respuesta del usuario a una confirmación.
type Decision struct {
	Confirmed bool   `json:"confirmed"`
	Reason    string `json:"reason,omitempty"`
}

// Confirmer colaborador de confirmación; bloquea hasta que el usuario decide.
type Confirmer interface {
	RequestConfirmation(ctx context.Context, req ConfirmationRequest) (Decision, error)
}

// QueryMirror recibe el estado de filtros y pestaña cada vez que cambia.
type QueryMirror interface {
	Mirror(values url.Values)
}

// Metrics observador de corridas del pipeline y de acciones aplicadas.
type Metrics interface {
	PipelineRun(tab string, results int, elapsed time.Duration)
	ActionApplied(kind, scope string, affected int)
	ConfirmationResolved(kind string, confirmed bool)
}

type nopMetrics struct{}

func (nopMetrics) PipelineRun(string, int, time.Duration) {}
func (nopMetrics) ActionApplied(string, string, int)      {}
func (nopMetrics) ConfirmationResolved(string, bool)      {}

type nopMirror struct{}

func (nopMirror) Mirror(url.Values) {}
