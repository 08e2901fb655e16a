// Package debounce retrasa tareas por flujo: cada nueva llamada sobre la misma
// clave cancela la anterior y reinicia la ventana.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow ventana usada cuando no se indica otra.
const DefaultWindow = 300 * time.Millisecond

// Debouncer agrupa llamadas por clave. Cada clave es un flujo independiente.
type Debouncer struct {
	clock  Clock
	window time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]*entry
}

type entry struct {
	timer Timer
	gen   uint64
}

// New crea un Debouncer. clock nil usa el reloj del sistema.
func New(clock Clock, window time.Duration) *Debouncer {
	if clock == nil {
		clock = RealClock{}
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{clock: clock, window: window, pending: make(map[string]*entry)}
}

// Window duración de la ventana.
func (d *Debouncer) Window() time.Duration { return d.window }

// Trigger programa fn para key tras la ventana y cancela lo pendiente de esa clave.
// Solo la última llamada de una ráfaga llega a ejecutarse.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}
	d.seq++
	gen := d.seq
	e := &entry{gen: gen}
	e.timer = d.clock.AfterFunc(d.window, func() {
		d.mu.Lock()
		cur, ok := d.pending[key]
		if !ok || cur.gen != gen {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = e
}

// Cancel descarta lo pendiente de key; devuelve true si había algo.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(d.pending, key)
	return true
}

// Stop cancela todos los flujos.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, e := range d.pending {
		e.timer.Stop()
		delete(d.pending, k)
	}
}

// Pending indica si key tiene una tarea esperando.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}
