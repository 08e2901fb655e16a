package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName instrumentación del directorio.
const TracerName = "github.com/jhoicas/directorio-escolar/internal/application/directory"

// Tracer tracer global del directorio. Sin proveedor configurado es un no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
