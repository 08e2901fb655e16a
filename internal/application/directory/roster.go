package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
	pkglogger "github.com/jhoicas/directorio-escolar/pkg/logger"
)

// Roster instantánea compartida de la colección completa. Los lectores reciben la
// referencia vigente y no deben modificarla; toda escritura persiste primero y luego
// reemplaza la colección entera.
type Roster struct {
	repo   repository.PersonRepository
	logger zerolog.Logger

	mu      sync.RWMutex
	people  []entity.Person
	index   map[string]int
	version uint64
}

// NewRoster carga la colección desde el repositorio.
func NewRoster(ctx context.Context, repo repository.PersonRepository, logger zerolog.Logger) (*Roster, error) {
	r := &Roster{repo: repo, logger: pkglogger.Component(logger, "roster")}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload vuelve a leer la colección del repositorio.
func (r *Roster) Reload(ctx context.Context) error {
	people, err := r.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("cargar directorio: %w", err)
	}
	index, err := buildIndex(people)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.people = people
	r.index = index
	r.version++
	r.mu.Unlock()
	r.logger.Debug().Int("personas", len(people)).Msg("directorio cargado")
	return nil
}

func buildIndex(people []entity.Person) (map[string]int, error) {
	index := make(map[string]int, len(people))
	for i, p := range people {
		id := dirdomain.Identity(p)
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("identidad %q repetida: %w", id, domain.ErrDuplicate)
		}
		index[id] = i
	}
	return index, nil
}

// Snapshot colección vigente y su versión.
func (r *Roster) Snapshot() ([]entity.Person, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.people, r.version
}

// Find busca por identidad.
func (r *Roster) Find(id string) (entity.Person, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return entity.Person{}, false
	}
	return r.people[i], true
}

// Lookup personas con las identidades dadas, en el orden de ids. Las ausentes se omiten.
func (r *Roster) Lookup(ids []string) []entity.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Person, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.index[id]; ok {
			out = append(out, r.people[i])
		}
	}
	return out
}

// UpdateStatus sobrescribe el estado de las identidades existentes y devuelve cuántas
// se actualizaron. Las identidades desconocidas se ignoran.
func (r *Roster) UpdateStatus(ctx context.Context, ids []string, status entity.Status) (int, error) {
	if !status.Valid() {
		return 0, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.index[id]; ok {
			known = append(known, id)
		}
	}
	if len(known) == 0 {
		return 0, nil
	}
	if err := r.repo.UpdateStatus(ctx, known, status); err != nil {
		return 0, fmt.Errorf("actualizar estado: %w", err)
	}

	next := make([]entity.Person, len(r.people))
	copy(next, r.people)
	for _, id := range known {
		i := r.index[id]
		next[i] = next[i].WithStatus(status)
	}
	r.people = next
	r.version++
	return len(known), nil
}

// Save crea o reemplaza por identidad. Devuelve true si la persona es nueva.
func (r *Roster) Save(ctx context.Context, p entity.Person) (bool, error) {
	id := dirdomain.Identity(p)
	if id == "" {
		return false, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if exists && r.people[i].Kind != p.Kind {
		return false, domain.ErrConflict
	}
	if err := r.repo.Save(ctx, p); err != nil {
		return false, fmt.Errorf("guardar persona: %w", err)
	}

	if exists {
		next := make([]entity.Person, len(r.people))
		copy(next, r.people)
		next[i] = p.Clone()
		r.people = next
	} else {
		next := make([]entity.Person, 0, len(r.people)+1)
		next = append(next, p.Clone())
		next = append(next, r.people...)
		index := make(map[string]int, len(next))
		for j, q := range next {
			index[dirdomain.Identity(q)] = j
		}
		r.people = next
		r.index = index
	}
	r.version++
	return !exists, nil
}
