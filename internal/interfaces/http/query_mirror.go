package http

import (
	"net/url"
	"sync"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
)

// HeaderQuery cabecera con la query string que el cliente debe reflejar en su URL.
const HeaderQuery = "X-Directorio-Query"

// headerMirror guarda los últimos parámetros publicados por una sesión. Los cambios
// diferidos llegan desde goroutines de temporizador, por eso el mutex.
type headerMirror struct {
	mu     sync.RWMutex
	values url.Values
}

var _ appdir.QueryMirror = (*headerMirror)(nil)

func (m *headerMirror) Mirror(v url.Values) {
	m.mu.Lock()
	m.values = v
	m.mu.Unlock()
}

// Encode query string vigente, sin "?".
func (m *headerMirror) Encode() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values.Encode()
}

// mirrorRegistry espejo por sesión.
type mirrorRegistry struct {
	mu      sync.RWMutex
	mirrors map[string]*headerMirror
}

func newMirrorRegistry() *mirrorRegistry {
	return &mirrorRegistry{mirrors: make(map[string]*headerMirror)}
}

func (r *mirrorRegistry) put(id string, m *headerMirror) {
	r.mu.Lock()
	r.mirrors[id] = m
	r.mu.Unlock()
}

func (r *mirrorRegistry) get(id string) *headerMirror {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mirrors[id]
}

func (r *mirrorRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.mirrors, id)
	r.mu.Unlock()
}
