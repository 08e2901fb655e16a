package directory

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	pkglogger "github.com/jhoicas/directorio-escolar/pkg/logger"
)

// Manager registro de sesiones abiertas y operaciones que no dependen de una sesión.
type Manager struct {
	roster  *Roster
	engine  *dirdomain.Engine
	views   SavedViewStore
	coord   *Coordinator
	cfg     SessionConfig
	logger  zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager construye el registro.
func NewManager(roster *Roster, engine *dirdomain.Engine, views SavedViewStore, coord *Coordinator, cfg SessionConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		roster:   roster,
		engine:   engine,
		views:    views,
		coord:    coord,
		cfg:      cfg,
		logger:   pkglogger.Component(logger, "directory_sessions"),
		sessions: make(map[string]*Session),
	}
}

// Coordinator coordinador de acciones compartido.
func (m *Manager) Coordinator() *Coordinator { return m.coord }

// Roster colección compartida.
func (m *Manager) Roster() *Roster { return m.roster }

// Open crea una sesión inicializada desde los parámetros de URL.
func (m *Manager) Open(params url.Values, mirror QueryMirror) *Session {
	cfg := m.cfg
	if mirror != nil {
		cfg.Mirror = mirror
	}
	s := NewSession(m.roster, m.engine, m.views, params, cfg)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	m.logger.Debug().Str("session_id", s.ID()).Msg("sesión abierta")
	return s
}

// Get busca una sesión abierta.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Close cierra la sesión y descarta sus acciones pendientes.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Close()
	m.coord.Discard(id)
	return nil
}

// Expire cierra las sesiones sin actividad desde hace más de idle. Devuelve cuántas cerró.
func (m *Manager) Expire(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()
	for _, id := range stale {
		_ = m.Close(id)
	}
	return len(stale)
}

// RunJanitor expira sesiones periódicamente hasta que ctx termine.
func (m *Manager) RunJanitor(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Expire(idle); n > 0 {
				m.logger.Info().Int("cerradas", n).Msg("sesiones inactivas cerradas")
			}
		}
	}
}

// Suggestions búsqueda predictiva sobre la colección completa.
func (m *Manager) Suggestions(term string, limit int) []dirdomain.Suggestion {
	people, _ := m.roster.Snapshot()
	return dirdomain.Suggestions(people, term, limit)
}

// ListViews vistas guardadas.
func (m *Manager) ListViews(ctx context.Context) ([]entity.SavedView, error) {
	views, err := m.views.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar vistas: %w", err)
	}
	return views, nil
}

// RemoveView elimina una vista guardada.
func (m *Manager) RemoveView(ctx context.Context, id string) error {
	if err := m.views.Remove(ctx, id); err != nil {
		return fmt.Errorf("eliminar vista: %w", err)
	}
	return nil
}
