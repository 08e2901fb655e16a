// Package notify implementa los avisos que emiten las acciones del directorio:
// registro en el log estructurado, publicación en NATS y reparto a varios destinos.
package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	pkglogger "github.com/jhoicas/directorio-escolar/pkg/logger"
)

// sanitizer limpia cualquier marcado del texto antes de difundirlo.
var sanitizer = bluemonday.StrictPolicy()

func clean(message string) string {
	return strings.TrimSpace(sanitizer.Sanitize(message))
}

// ── Log ───────────────────────────────────────────────────────────────────────

// LogNotifier escribe cada aviso en el logger.
type LogNotifier struct {
	logger zerolog.Logger
}

var _ appdir.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: pkglogger.Component(logger, "notify")}
}

func (n *LogNotifier) Notify(_ context.Context, message string, action *appdir.NotificationAction) error {
	ev := n.logger.Info().Str("mensaje", clean(message))
	if action != nil {
		ev = ev.Str("accion", action.Label).Str("ruta", action.Path)
	}
	ev.Msg("notificación")
	return nil
}

// ── Fan-out ───────────────────────────────────────────────────────────────────

// Multi reparte el aviso a todos los destinos; un fallo no impide el resto.
type Multi []appdir.Notifier

var _ appdir.Notifier = Multi(nil)

func (m Multi) Notify(ctx context.Context, message string, action *appdir.NotificationAction) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, message, action); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
