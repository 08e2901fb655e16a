package observability_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-escolar/internal/observability"
)

func TestDirectoryMetrics_CuentaCorridas(t *testing.T) {
	m := observability.NewDirectoryMetrics()
	before := testutil.ToFloat64(observability.PipelineRuns().WithLabelValues("Estudiantes"))

	m.PipelineRun("Estudiantes", 3, time.Millisecond)
	m.PipelineRun("Estudiantes", 2, time.Millisecond)

	after := testutil.ToFloat64(observability.PipelineRuns().WithLabelValues("Estudiantes"))
	assert.Equal(t, before+2, after)
}

func TestDirectoryMetrics_AccionesYConfirmaciones(t *testing.T) {
	m := observability.NewDirectoryMetrics()
	before := testutil.ToFloat64(observability.BulkActions().WithLabelValues("activate", "bulk"))

	m.ActionApplied("activate", "bulk", 2)
	m.ConfirmationResolved("activate", false)

	assert.Equal(t, before+1, testutil.ToFloat64(observability.BulkActions().WithLabelValues("activate", "bulk")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(observability.Confirmations().WithLabelValues("activate", "false")), 1.0)
}

func TestMetricsHandler_ExponeColectores(t *testing.T) {
	app := fiber.New()
	app.Use(observability.HTTPMetrics())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", observability.MetricsHandler())

	_, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "directorio_http_requests_total"))
}
