package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// PersonRepository implementación en memoria; conserva el orden de inserción y
// antepone las altas nuevas.
type PersonRepository struct {
	mu     sync.RWMutex
	people []entity.Person
}

var _ repository.PersonRepository = (*PersonRepository)(nil)

// NewPersonRepository crea el repositorio con una copia de seed.
func NewPersonRepository(seed []entity.Person) (*PersonRepository, error) {
	seen := make(map[string]struct{}, len(seed))
	people := make([]entity.Person, 0, len(seed))
	for _, p := range seed {
		id := directory.Identity(p)
		if _, dup := seen[id]; dup {
			return nil, domain.ErrDuplicate
		}
		seen[id] = struct{}{}
		people = append(people, p.Clone())
	}
	return &PersonRepository{people: people}, nil
}

func (r *PersonRepository) ListAll(ctx context.Context) ([]entity.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Person, len(r.people))
	for i, p := range r.people {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *PersonRepository) Save(ctx context.Context, p entity.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := directory.Identity(p)
	for i, q := range r.people {
		if directory.Identity(q) == id {
			r.people[i] = p.Clone()
			return nil
		}
	}
	r.people = append([]entity.Person{p.Clone()}, r.people...)
	return nil
}

func (r *PersonRepository) UpdateStatus(ctx context.Context, ids []string, status entity.Status) error {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.people {
		if _, ok := want[directory.Identity(p)]; ok {
			r.people[i] = p.WithStatus(status)
		}
	}
	return nil
}
