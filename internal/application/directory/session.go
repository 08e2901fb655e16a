package directory

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/pkg/debounce"
)

// Claves de los flujos diferidos.
const (
	streamSearch = "search"
	streamTags   = "tags"
)

// SessionConfig parámetros de una sesión.
type SessionConfig struct {
	PageSize int
	Window   time.Duration
	Clock    debounce.Clock
	Mirror   QueryMirror
	Metrics  Metrics
	// OnRecompute se invoca tras cada corrida del pipeline con la consulta usada.
	OnRecompute func(q dirdomain.Query, results int)
}

// FilterPatch cambios parciales de filtros; nil deja el campo como está.
type FilterPatch struct {
	SearchTerm *string `json:"search_term,omitempty"`
	TagFilter  *string `json:"tag_filter,omitempty"`
	Status     *string `json:"status,omitempty"`
	Level      *string `json:"level,omitempty"`
	Role       *string `json:"role,omitempty"`
}

// View estado derivado de la sesión listo para presentar.
type View struct {
	SessionID          string                `json:"session_id"`
	Tab                dirdomain.Tab         `json:"tab"`
	Filters            entity.Filters        `json:"filters"`
	AppliedSearch      string                `json:"applied_search"`
	AppliedTags        string                `json:"applied_tags"`
	Sort               *dirdomain.SortConfig `json:"sort,omitempty"`
	Rows               []entity.Person       `json:"-"`
	Page               dirdomain.PageInfo    `json:"page"`
	TabCounts          map[dirdomain.Tab]int `json:"tab_counts"`
	StatusCounts       map[entity.Status]int `json:"status_counts"`
	RoleOptions        []string              `json:"role_options"`
	Selected           []string              `json:"selected"`
	AllVisibleSelected bool                  `json:"all_visible_selected"`
	Params             url.Values            `json:"params"`
}

// Session estado de consulta de un cliente: pestaña, filtros, búsqueda diferida,
// orden, página y selección. Todas las mutaciones pasan por el mutex porque los
// flujos diferidos se confirman desde goroutines de temporizador.
type Session struct {
	id        string
	roster    *Roster
	engine    *dirdomain.Engine
	views     SavedViewStore
	debouncer *debounce.Debouncer
	mirror    QueryMirror
	metrics   Metrics
	pageSize  int
	onRun     func(dirdomain.Query, int)

	mu        sync.Mutex
	tab       dirdomain.Tab
	input     entity.Filters
	search    string
	tags      string
	sort      *dirdomain.SortConfig
	page      int
	selection *dirdomain.Selection
	result    []entity.Person
	resultVer uint64
	lastSeen  time.Time
}

// NewSession crea una sesión leyendo una única vez el estado inicial desde params.
func NewSession(roster *Roster, engine *dirdomain.Engine, views SavedViewStore, params url.Values, cfg SessionConfig) *Session {
	if cfg.PageSize <= 0 {
		cfg.PageSize = dirdomain.DefaultPageSize
	}
	if cfg.Mirror == nil {
		cfg.Mirror = nopMirror{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	filters, tab := dirdomain.ParseParams(params)
	sort := dirdomain.DefaultSort

	s := &Session{
		id:        uuid.NewString(),
		roster:    roster,
		engine:    engine,
		views:     views,
		debouncer: debounce.New(cfg.Clock, cfg.Window),
		mirror:    cfg.Mirror,
		metrics:   cfg.Metrics,
		pageSize:  cfg.PageSize,
		onRun:     cfg.OnRecompute,
		tab:       tab,
		input:     filters,
		search:    filters.SearchTerm,
		tags:      filters.TagFilter,
		sort:      &sort,
		page:      1,
		selection: dirdomain.NewSelection(),
		lastSeen:  time.Now(),
	}
	s.mu.Lock()
	s.recompute()
	s.mu.Unlock()
	return s
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// Close cancela los flujos diferidos pendientes.
func (s *Session) Close() { s.debouncer.Stop() }

// LastSeen último acceso a la sesión.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// ── Consulta ────────────────────────────────────────────────────────────────

func (s *Session) query() dirdomain.Query {
	f := s.input
	f.SearchTerm = s.search
	f.TagFilter = s.tags
	return dirdomain.Query{Tab: s.tab, Filters: f, Sort: s.sort}
}

// recompute corre el pipeline con el estado confirmado. Requiere s.mu.
func (s *Session) recompute() {
	people, ver := s.roster.Snapshot()
	q := s.query()
	start := time.Now()
	s.result = s.engine.Run(people, q)
	s.resultVer = ver
	s.page = dirdomain.ClampPage(s.page, len(s.result), s.pageSize)
	s.metrics.PipelineRun(string(q.Tab), len(s.result), time.Since(start))
	if s.onRun != nil {
		s.onRun(q, len(s.result))
	}
}

// refresh recalcula si la colección cambió desde la última corrida. Requiere s.mu.
func (s *Session) refresh() {
	if _, ver := s.roster.Snapshot(); ver != s.resultVer {
		s.recompute()
	}
}

func (s *Session) publish() {
	s.mirror.Mirror(dirdomain.EncodeParams(s.query().Filters, s.tab))
}

// filtersChanged vuelve a la página 1, recalcula y refleja en la URL. Requiere s.mu.
func (s *Session) filtersChanged() {
	s.page = 1
	s.recompute()
	s.publish()
}

// SetSearchTerm registra lo escrito; el término llega al pipeline al cerrarse la ventana.
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.input.SearchTerm = term
	s.debouncer.Trigger(streamSearch, func() { s.commitSearch(term) })
}

// SetTagFilter igual que SetSearchTerm para la búsqueda por etiqueta, con ventana propia.
func (s *Session) SetTagFilter(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.input.TagFilter = tag
	s.debouncer.Trigger(streamTags, func() { s.commitTags(tag) })
}

func (s *Session) commitSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Una tecla posterior ya reprogramó el flujo: solo se confirma el último término escrito.
	if s.search == term || s.input.SearchTerm != term {
		return
	}
	s.search = term
	s.filtersChanged()
}

func (s *Session) commitTags(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tags == tag || s.input.TagFilter != tag {
		return
	}
	s.tags = tag
	s.filtersChanged()
}

// Flush confirma de inmediato lo escrito en búsqueda y etiquetas.
func (s *Session) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debouncer.Cancel(streamSearch)
	s.debouncer.Cancel(streamTags)
	if s.search == s.input.SearchTerm && s.tags == s.input.TagFilter {
		return
	}
	s.search = s.input.SearchTerm
	s.tags = s.input.TagFilter
	s.filtersChanged()
}

// UpdateFilters aplica un cambio parcial. Estado, nivel y rol se confirman al
// instante; búsqueda y etiquetas pasan por su ventana.
func (s *Session) UpdateFilters(p FilterPatch) {
	if p.SearchTerm != nil {
		s.SetSearchTerm(*p.SearchTerm)
	}
	if p.TagFilter != nil {
		s.SetTagFilter(*p.TagFilter)
	}
	if p.Status == nil && p.Level == nil && p.Role == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	next := s.input
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Level != nil {
		next.Level = *p.Level
	}
	if p.Role != nil {
		next.Role = *p.Role
	}
	next = next.Normalize()
	if next == s.input {
		return
	}
	s.input = next
	s.filtersChanged()
}

// ResetFilters vuelve a los filtros por defecto y descarta búsquedas pendientes.
func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.debouncer.Cancel(streamSearch)
	s.debouncer.Cancel(streamTags)
	s.input = entity.DefaultFilters()
	s.search, s.tags = "", ""
	s.filtersChanged()
}

// SetTab cambia de pestaña y reinicia el filtro de rol.
func (s *Session) SetTab(tab dirdomain.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if tab == "" {
		tab = dirdomain.TabAll
	}
	s.tab = tab
	s.input.Role = entity.Wildcard
	s.filtersChanged()
}

// ToggleSort invierte la dirección si key ya es la clave activa; si no, ordena
// ascendente por key. Conserva la página salvo que quede fuera de rango.
func (s *Session) ToggleSort(key string) dirdomain.SortConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	var cur dirdomain.SortConfig
	if s.sort != nil {
		cur = *s.sort
	}
	next := cur.Toggle(key)
	s.sort = &next
	s.recompute()
	return next
}

// SetPage cambia de página; el valor se acota al rango válido.
func (s *Session) SetPage(page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.refresh()
	s.page = dirdomain.ClampPage(page, len(s.result), s.pageSize)
	return s.page
}

// View devuelve la página actual y los contadores derivados.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.refresh()

	people, _ := s.roster.Snapshot()
	rows, info := dirdomain.Paginate(s.result, s.page, s.pageSize)
	visible := identities(rows)
	var sort *dirdomain.SortConfig
	if s.sort != nil {
		cp := *s.sort
		sort = &cp
	}
	return View{
		SessionID:          s.id,
		Tab:                s.tab,
		Filters:            s.input,
		AppliedSearch:      s.search,
		AppliedTags:        s.tags,
		Sort:               sort,
		Rows:               rows,
		Page:               info,
		TabCounts:          dirdomain.TabCounts(people),
		StatusCounts:       dirdomain.StatusCounts(people, s.tab),
		RoleOptions:        dirdomain.RoleOptions(s.tab),
		Selected:           s.selection.IDs(),
		AllVisibleSelected: s.selection.AllVisibleSelected(visible),
		Params:             dirdomain.EncodeParams(s.query().Filters, s.tab),
	}
}

// Results lista filtrada y ordenada completa (todas las páginas).
func (s *Session) Results() []entity.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s.result
}

// ── Selección ──────────────────────────────────────────────────────────────

// ToggleSelection marca o desmarca una identidad. La selección no depende de la vista.
func (s *Session) ToggleSelection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.selection.Toggle(id)
	return s.selection.Has(id)
}

// SelectPage con checked deja seleccionada exactamente la página visible; sin checked
// vacía la selección.
func (s *Session) SelectPage(checked bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.refresh()
	rows, _ := dirdomain.Paginate(s.result, s.page, s.pageSize)
	s.selection.SelectAllVisible(identities(rows), checked)
	return s.selection.IDs()
}

// ClearSelection vacía la selección.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// SelectedIDs identidades seleccionadas, ordenadas.
func (s *Session) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// consumeSelection vacía la selección tras aplicar una acción masiva.
func (s *Session) consumeSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// ── Vistas guardadas ───────────────────────────────────────────────────────

// SaveView guarda los filtros actuales con nombre.
func (s *Session) SaveView(ctx context.Context, name string) (entity.SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.SavedView{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	filters := s.input
	s.mu.Unlock()

	view := entity.SavedView{
		ID:        uuid.NewString(),
		Name:      name,
		Filters:   filters,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.views.Add(ctx, view); err != nil {
		return entity.SavedView{}, fmt.Errorf("guardar vista: %w", err)
	}
	return view, nil
}

// ApplyView reemplaza los filtros por los de la vista. La búsqueda de la vista se
// confirma sin esperar la ventana.
func (s *Session) ApplyView(ctx context.Context, id string) (entity.SavedView, error) {
	views, err := s.views.List(ctx)
	if err != nil {
		return entity.SavedView{}, fmt.Errorf("listar vistas: %w", err)
	}
	for _, v := range views {
		if v.ID != id {
			continue
		}
		s.mu.Lock()
		s.debouncer.Cancel(streamSearch)
		s.debouncer.Cancel(streamTags)
		s.input = v.Filters.Normalize()
		s.search = s.input.SearchTerm
		s.tags = s.input.TagFilter
		s.filtersChanged()
		s.mu.Unlock()
		return v, nil
	}
	return entity.SavedView{}, domain.ErrNotFound
}

func (s *Session) touch() { s.lastSeen = time.Now() }

func identities(people []entity.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = dirdomain.Identity(p)
	}
	return out
}
