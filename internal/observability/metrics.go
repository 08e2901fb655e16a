package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	pipelineRunsTotal      *prometheus.CounterVec
	pipelineLatencySeconds *prometheus.HistogramVec
	pipelineResults        *prometheus.GaugeVec
	bulkActionsTotal       *prometheus.CounterVec
	bulkAffectedTotal      *prometheus.CounterVec
	confirmationsTotal     *prometheus.CounterVec
	httpRequestsTotal      *prometheus.CounterVec
	httpLatencySeconds     *prometheus.HistogramVec
)

// RegisterMetrics inicializa los colectores Prometheus del directorio.
func RegisterMetrics() {
	registerOnce.Do(func() {
		pipelineRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_pipeline_runs_total",
			Help: "Recomputaciones del listado de usuarios.",
		}, []string{"tab"})

		pipelineLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directorio_pipeline_latency_seconds",
			Help:    "Duración de una corrida del pipeline de consulta.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"tab"})

		pipelineResults = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "directorio_pipeline_results",
			Help: "Filas resultantes de la última corrida por pestaña.",
		}, []string{"tab"})

		bulkActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_bulk_actions_total",
			Help: "Acciones aplicadas sobre usuarios (masivas e individuales).",
		}, []string{"kind", "scope"})

		bulkAffectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_bulk_affected_total",
			Help: "Usuarios afectados por acciones aplicadas.",
		}, []string{"kind"})

		confirmationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_confirmations_total",
			Help: "Resoluciones de acciones pendientes.",
		}, []string{"kind", "decision"})

		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_http_requests_total",
			Help: "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directorio_http_latency_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		prometheus.MustRegister(
			pipelineRunsTotal, pipelineLatencySeconds, pipelineResults,
			bulkActionsTotal, bulkAffectedTotal, confirmationsTotal,
			httpRequestsTotal, httpLatencySeconds,
		)
	})
}

// PipelineRuns contador de corridas del pipeline.
func PipelineRuns() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineRunsTotal
}

// BulkActions contador de acciones aplicadas.
func BulkActions() *prometheus.CounterVec {
	RegisterMetrics()
	return bulkActionsTotal
}

// Confirmations contador de confirmaciones y cancelaciones.
func Confirmations() *prometheus.CounterVec {
	RegisterMetrics()
	return confirmationsTotal
}

// DirectoryMetrics registra métricas del directorio sobre los colectores globales.
type DirectoryMetrics struct{}

// NewDirectoryMetrics registra los colectores si hace falta.
func NewDirectoryMetrics() DirectoryMetrics {
	RegisterMetrics()
	return DirectoryMetrics{}
}

func (DirectoryMetrics) PipelineRun(tab string, results int, elapsed time.Duration) {
	pipelineRunsTotal.WithLabelValues(tab).Inc()
	pipelineLatencySeconds.WithLabelValues(tab).Observe(elapsed.Seconds())
	pipelineResults.WithLabelValues(tab).Set(float64(results))
}

func (DirectoryMetrics) ActionApplied(kind, scope string, affected int) {
	bulkActionsTotal.WithLabelValues(kind, scope).Inc()
	bulkAffectedTotal.WithLabelValues(kind).Add(float64(affected))
}

func (DirectoryMetrics) ConfirmationResolved(kind string, confirmed bool) {
	confirmationsTotal.WithLabelValues(kind, strconv.FormatBool(confirmed)).Inc()
}
