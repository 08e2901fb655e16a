package directory_test

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/memory"
	"github.com/jhoicas/directorio-escolar/pkg/debounce"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string, _ *appdir.NotificationAction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

type stubExporter struct{ got []entity.Person }

func (e *stubExporter) Export(_ context.Context, people []entity.Person) (appdir.Artifact, error) {
	e.got = people
	return appdir.Artifact{Filename: "export.csv", ContentType: "text/csv", Data: []byte("ok")}, nil
}

func (e *stubExporter) GenerateCarnets(_ context.Context, people []entity.Person) (appdir.Artifact, error) {
	e.got = people
	return appdir.Artifact{Filename: "carnets.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}, nil
}

type fixedConfirmer struct {
	decision appdir.Decision
	asked    []appdir.ConfirmationRequest
}

func (c *fixedConfirmer) RequestConfirmation(_ context.Context, req appdir.ConfirmationRequest) (appdir.Decision, error) {
	c.asked = append(c.asked, req)
	return c.decision, nil
}

type recordingMirror struct{ last url.Values }

func (m *recordingMirror) Mirror(v url.Values) { m.last = v }

type fixture struct {
	clock    *debounce.VirtualClock
	roster   *appdir.Roster
	logs     *memory.ActivityLogRepository
	views    *memory.SavedViewRepository
	notifier *recordingNotifier
	exporter *stubExporter
	coord    *appdir.Coordinator
	engine   *dirdomain.Engine
	runs     []dirdomain.Query
	mirror   *recordingMirror
}

func newFixture(t *testing.T, people []entity.Person) *fixture {
	t.Helper()
	repo, err := memory.NewPersonRepository(people)
	require.NoError(t, err)
	roster, err := appdir.NewRoster(context.Background(), repo, zerolog.Nop())
	require.NoError(t, err)

	f := &fixture{
		clock:    debounce.NewVirtualClock(time.Unix(0, 0)),
		roster:   roster,
		logs:     memory.NewActivityLogRepository(),
		views:    memory.NewSavedViewRepository(),
		notifier: &recordingNotifier{},
		exporter: &stubExporter{},
		engine:   dirdomain.NewEngine(dirdomain.DefaultOptions()),
		mirror:   &recordingMirror{},
	}
	f.coord = appdir.NewCoordinator(appdir.CoordinatorDeps{
		Roster:   roster,
		Logs:     f.logs,
		Notifier: f.notifier,
		Exporter: f.exporter,
		Carnets:  f.exporter,
		Logger:   zerolog.Nop(),
		NewID:    func() string { return "12345678" },
	})
	return f
}

func (f *fixture) session(params url.Values) *appdir.Session {
	return appdir.NewSession(f.roster, f.engine, f.views, params, appdir.SessionConfig{
		Clock:       f.clock,
		Window:      300 * time.Millisecond,
		Mirror:      f.mirror,
		OnRecompute: func(q dirdomain.Query, _ int) { f.runs = append(f.runs, q) },
	})
}

func (f *fixture) searchedTerms() []string {
	var out []string
	for _, q := range f.runs {
		out = append(out, q.Filters.SearchTerm)
	}
	return out
}

func student(doc, name, grade string, status entity.Status) entity.Person {
	return entity.NewStudent(entity.Student{DocumentNumber: doc, StudentCode: "0000" + doc, FullName: name, Grade: grade}, status)
}

func staff(dni, name string, status entity.Status) entity.Person {
	return entity.NewStaff(entity.Staff{DNI: dni, Name: name, Area: "Matemáticas", Category: entity.CategoryTeacher}, status)
}

func guardian(dni, name string, status entity.Status) entity.Person {
	return entity.NewGuardian(entity.Guardian{DNI: dni, Name: name, Email: dni + "@correo.pe"}, status)
}

func rowIDs(v appdir.View) []string {
	out := make([]string, len(v.Rows))
	for i, p := range v.Rows {
		out[i] = dirdomain.Identity(p)
	}
	return out
}

func statusOf(t *testing.T, r *appdir.Roster, id string) entity.Status {
	t.Helper()
	p, ok := r.Find(id)
	require.True(t, ok, "no existe %s", id)
	return p.Status
}

func strptr(s string) *string { return &s }
