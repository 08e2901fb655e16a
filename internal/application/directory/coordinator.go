package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
	"github.com/jhoicas/directorio-escolar/internal/observability"
	pkglogger "github.com/jhoicas/directorio-escolar/pkg/logger"
)

// CoordinatorDeps colaboradores del coordinador.
type CoordinatorDeps struct {
	Roster      *Roster
	Logs        repository.ActivityLogRepository
	Notifier    Notifier
	Exporter    Exporter
	Carnets     CarnetGenerator
	Metrics     Metrics
	Logger      zerolog.Logger
	Actor       string
	EmailDomain string
	Now         func() time.Time
	NewID       func() string
}

// Coordinator aplica acciones sobre usuarios. Las acciones que requieren
// confirmación quedan pendientes hasta Resolve; cancelar no deja rastro.
type Coordinator struct {
	roster      *Roster
	logs        repository.ActivityLogRepository
	notifier    Notifier
	exporter    Exporter
	carnets     CarnetGenerator
	metrics     Metrics
	logger      zerolog.Logger
	tracer      trace.Tracer
	actor       string
	emailDomain string
	now         func() time.Time
	newID       func() string

	mu      sync.Mutex
	pending map[string]*PendingAction
}

// NewCoordinator construye el coordinador.
func NewCoordinator(deps CoordinatorDeps) *Coordinator {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.Actor == "" {
		deps.Actor = DefaultActor
	}
	if deps.EmailDomain == "" {
		deps.EmailDomain = dirdomain.DefaultEmailDomain
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = newIdentity
	}
	return &Coordinator{
		roster:      deps.Roster,
		logs:        deps.Logs,
		notifier:    deps.Notifier,
		exporter:    deps.Exporter,
		carnets:     deps.Carnets,
		metrics:     deps.Metrics,
		logger:      pkglogger.Component(deps.Logger, "directory_coordinator"),
		tracer:      observability.Tracer(),
		actor:       deps.Actor,
		emailDomain: deps.EmailDomain,
		now:         deps.Now,
		newID:       deps.NewID,
		pending:     make(map[string]*PendingAction),
	}
}

// ── Pendientes ──────────────────────────────────────────────────────────────

// Request prepara una acción masiva sobre la selección actual de s. No cambia nada
// hasta Resolve. Una acción desconocida devuelve (nil, nil).
func (c *Coordinator) Request(s *Session, kind ActionKind) (*PendingAction, error) {
	if !kind.IsBulk() {
		c.logger.Debug().Str("kind", string(kind)).Msg("acción masiva desconocida ignorada")
		return nil, nil
	}
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		return nil, domain.ErrEmptySelection
	}
	p := &PendingAction{
		ID:        uuid.NewString(),
		Kind:      kind,
		Scope:     ScopeBulk,
		SessionID: s.ID(),
		Targets:   ids,
		CreatedAt: c.now().UTC(),
		session:   s,
	}
	bulkPrompt(p)
	c.store(p)
	return p, nil
}

// Pending devuelve una acción pendiente sin resolverla.
func (c *Coordinator) Pending(id string) (PendingAction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[id]
	if !ok {
		return PendingAction{}, false
	}
	return *p, true
}

// PendingFor acciones pendientes de una sesión, de la más antigua a la más nueva.
func (c *Coordinator) PendingFor(sessionID string) []PendingAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PendingAction, 0)
	for _, p := range c.pending {
		if p.SessionID == sessionID {
			out = append(out, *p)
		}
	}
	sortPending(out)
	return out
}

// Discard elimina las pendientes de una sesión cerrada.
func (c *Coordinator) Discard(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, p := range c.pending {
		if p.SessionID == sessionID {
			delete(c.pending, id)
		}
	}
}

func (c *Coordinator) store(p *PendingAction) {
	c.mu.Lock()
	c.pending[p.ID] = p
	c.mu.Unlock()
}

func (c *Coordinator) take(id string) (*PendingAction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	return p, ok
}

// Resolve aplica o cancela una acción pendiente. Cancelar no modifica estado,
// no registra bitácora y no toca la selección.
func (c *Coordinator) Resolve(ctx context.Context, id string, d Decision) (*ActionResult, error) {
	p, ok := c.take(id)
	if !ok {
		return nil, domain.ErrPendingActionNotFound
	}
	c.metrics.ConfirmationResolved(string(p.Kind), d.Confirmed)
	if !d.Confirmed {
		c.logger.Debug().Str("kind", string(p.Kind)).Str("pending_id", p.ID).Msg("acción cancelada")
		return &ActionResult{Kind: p.Kind, Scope: p.Scope, Cancelled: true}, nil
	}
	return c.apply(ctx, p, d.Reason)
}

// Dispatch pide confirmación al colaborador y resuelve en una sola llamada.
func (c *Coordinator) Dispatch(ctx context.Context, s *Session, kind ActionKind, confirmer Confirmer) (*ActionResult, error) {
	p, err := c.Request(s, kind)
	if err != nil || p == nil {
		return nil, err
	}
	return c.confirmAndResolve(ctx, p, confirmer)
}

func (c *Coordinator) confirmAndResolve(ctx context.Context, p *PendingAction, confirmer Confirmer) (*ActionResult, error) {
	d, err := confirmer.RequestConfirmation(ctx, p.Confirmation())
	if err != nil {
		c.take(p.ID)
		return nil, fmt.Errorf("confirmación: %w", err)
	}
	return c.Resolve(ctx, p.ID, d)
}

// ── Acciones individuales ───────────────────────────────────────────────────

// RequestSingle prepara una acción sobre una persona. Si la acción no requiere
// confirmación se aplica de inmediato y se devuelve su resultado; si la requiere,
// se devuelve la pendiente. Una acción desconocida devuelve todo nil.
func (c *Coordinator) RequestSingle(ctx context.Context, identity string, kind ActionKind) (*PendingAction, *ActionResult, error) {
	if !kind.IsSingle() {
		return nil, nil, nil
	}
	person, ok := c.roster.Find(identity)
	if !ok {
		return nil, nil, domain.ErrUserNotFound
	}
	if kind == ActionGenerateCarnet && person.Kind != entity.KindStudent {
		return nil, nil, domain.ErrActionNotApplicable
	}
	p := &PendingAction{
		ID:         uuid.NewString(),
		Kind:       kind,
		Scope:      ScopeSingle,
		Targets:    []string{identity},
		TargetName: dirdomain.DisplayName(person),
		CreatedAt:  c.now().UTC(),
	}
	if !kind.needsConfirmation(ScopeSingle) {
		res, err := c.apply(ctx, p, "")
		return nil, res, err
	}
	singlePrompt(p, dirdomain.DerivedEmail(person, c.emailDomain))
	c.store(p)
	return p, nil, nil
}

// DispatchSingle variante síncrona de RequestSingle con el colaborador de confirmación.
func (c *Coordinator) DispatchSingle(ctx context.Context, identity string, kind ActionKind, confirmer Confirmer) (*ActionResult, error) {
	p, res, err := c.RequestSingle(ctx, identity, kind)
	if err != nil || p == nil {
		return res, err
	}
	return c.confirmAndResolve(ctx, p, confirmer)
}

// ── Aplicación ──────────────────────────────────────────────────────────────

func (c *Coordinator) apply(ctx context.Context, p *PendingAction, reason string) (*ActionResult, error) {
	spanCtx, span := c.tracer.Start(ctx, "directorio.apply_action", trace.WithAttributes(
		attribute.String("action.kind", string(p.Kind)),
		attribute.String("action.scope", string(p.Scope)),
		attribute.Int("action.targets", len(p.Targets)),
	))
	defer span.End()

	var (
		res *ActionResult
		err error
	)
	if p.Scope == ScopeBulk {
		res, err = c.applyBulk(spanCtx, p)
	} else {
		res, err = c.applySingle(spanCtx, p, reason)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error().Err(err).Str("kind", string(p.Kind)).Str("scope", string(p.Scope)).Msg("acción fallida")
		return nil, err
	}

	c.metrics.ActionApplied(string(p.Kind), string(p.Scope), res.Affected)
	c.logger.Info().
		Str("kind", string(p.Kind)).
		Str("scope", string(p.Scope)).
		Int("affected", res.Affected).
		Msg("acción aplicada")
	return res, nil
}

func (c *Coordinator) applyBulk(ctx context.Context, p *PendingAction) (*ActionResult, error) {
	res := &ActionResult{Kind: p.Kind, Scope: ScopeBulk}
	var (
		action  entity.ActivityAction
		details string
		notice  string
	)

	switch p.Kind {
	case ActionActivate, ActionSuspend:
		status := entity.StatusActive
		if p.Kind == ActionSuspend {
			status = entity.StatusSuspended
		}
		n, err := c.roster.UpdateStatus(ctx, p.Targets, status)
		if err != nil {
			return nil, err
		}
		res.Affected = n
		action = entity.ActionStatusChange
		details = fmt.Sprintf("Se cambió el estado a %q para %d usuarios.", status, n)
		notice = fmt.Sprintf("%d usuarios actualizados a %q.", n, status)

	case ActionResendInvitation:
		res.Affected = len(c.roster.Lookup(p.Targets))
		action = entity.ActionInvitationSent
		details = fmt.Sprintf("Se reenviaron invitaciones a %d usuarios.", res.Affected)
		notice = fmt.Sprintf("Invitaciones reenviadas a %d usuarios.", res.Affected)

	case ActionGenerateDocument:
		students := onlyStudents(c.roster.Lookup(p.Targets))
		if len(students) == 0 {
			return nil, domain.ErrActionNotApplicable
		}
		art, err := c.carnets.GenerateCarnets(ctx, students)
		if err != nil {
			return nil, fmt.Errorf("generar carnets: %w", err)
		}
		res.Artifact = &art
		res.Affected = len(students)
		action = entity.ActionCarnet
		details = fmt.Sprintf("Se generaron carnets para %d estudiantes.", res.Affected)
		notice = fmt.Sprintf("Carnets generados para %d estudiantes.", res.Affected)

	case ActionExport:
		people := c.roster.Lookup(p.Targets)
		art, err := c.exporter.Export(ctx, people)
		if err != nil {
			return nil, fmt.Errorf("exportar: %w", err)
		}
		res.Artifact = &art
		res.Affected = len(people)
		action = entity.ActionExport
		details = fmt.Sprintf("Se exportaron los datos de %d usuarios seleccionados.", res.Affected)
		notice = fmt.Sprintf("Exportación lista: %d usuarios.", res.Affected)
	}

	entry, err := c.appendLog(ctx, action, details, "", res.Affected)
	if err != nil {
		return nil, err
	}
	res.Log = entry
	c.notify(ctx, notice, nil)

	if !p.Kind.keepsSelection() && p.session != nil {
		p.session.consumeSelection()
	}
	return res, nil
}

func (c *Coordinator) applySingle(ctx context.Context, p *PendingAction, reason string) (*ActionResult, error) {
	identity := p.Targets[0]
	person, ok := c.roster.Find(identity)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	name := dirdomain.DisplayName(person)
	email := dirdomain.DerivedEmail(person, c.emailDomain)
	res := &ActionResult{Kind: p.Kind, Scope: ScopeSingle, Affected: 1}

	var (
		action  entity.ActivityAction
		details string
		notice  string
	)
	switch p.Kind {
	case ActionSuspend:
		if _, err := c.roster.UpdateStatus(ctx, []string{identity}, entity.StatusSuspended); err != nil {
			return nil, err
		}
		action = entity.ActionStatusChange
		details = fmt.Sprintf("Estado cambiado a %q.", entity.StatusSuspended)
		if reason != "" {
			details += " Motivo: " + reason
		}
		notice = fmt.Sprintf("El estado de %s ha sido actualizado a %q.", name, entity.StatusSuspended)

	case ActionResetPassword:
		action = entity.ActionPasswordReset
		details = "Se envió un enlace de recuperación a " + email
		notice = "Enlace de recuperación enviado a " + name

	case ActionResendInvitation:
		action = entity.ActionInvitationSent
		details = "Se reenvió la invitación a " + email
		notice = "Invitación reenviada a " + name

	case ActionGenerateCarnet:
		if person.Kind != entity.KindStudent {
			return nil, domain.ErrActionNotApplicable
		}
		art, err := c.carnets.GenerateCarnets(ctx, []entity.Person{person})
		if err != nil {
			return nil, fmt.Errorf("generar carnet: %w", err)
		}
		res.Artifact = &art
		action = entity.ActionCarnet
		details = "Se generó el carnet de " + name
		notice = "Carnet generado para " + name
	}

	entry, err := c.appendLog(ctx, action, details, name, 1)
	if err != nil {
		return nil, err
	}
	res.Log = entry
	c.notify(ctx, notice, nil)
	return res, nil
}

// ── Bitácora y notificaciones ───────────────────────────────────────────────

func (c *Coordinator) appendLog(ctx context.Context, action entity.ActivityAction, details, target string, count int) (*entity.ActivityLog, error) {
	entry := entity.ActivityLog{
		ID:         uuid.NewString(),
		Timestamp:  c.now().UTC(),
		Actor:      ActorFrom(ctx, c.actor),
		Action:     action,
		Details:    details,
		TargetUser: target,
		Count:      count,
	}
	if err := c.logs.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar actividad: %w", err)
	}
	return &entry, nil
}

// notify no interrumpe la acción si el colaborador falla.
func (c *Coordinator) notify(ctx context.Context, message string, action *NotificationAction) {
	if c.notifier == nil || message == "" {
		return
	}
	if err := c.notifier.Notify(ctx, message, action); err != nil {
		c.logger.Warn().Err(err).Msg("no se pudo enviar la notificación")
	}
}

// ActivityLog consulta la bitácora.
func (c *Coordinator) ActivityLog(ctx context.Context, filter repository.ActivityLogFilter) ([]entity.ActivityLog, error) {
	logs, err := c.logs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar actividad: %w", err)
	}
	return logs, nil
}

func onlyStudents(people []entity.Person) []entity.Person {
	out := make([]entity.Person, 0, len(people))
	for _, p := range people {
		if p.Kind == entity.KindStudent {
			out = append(out, p)
		}
	}
	return out
}

// IsNotFound errores que el host traduce a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrPendingActionNotFound)
}
