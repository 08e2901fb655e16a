package directory

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/memory"
	"github.com/jhoicas/directorio-escolar/pkg/debounce"
)

const window = 300 * time.Millisecond

func newInternalSession(t *testing.T) (*Session, *debounce.VirtualClock) {
	t.Helper()
	repo, err := memory.NewPersonRepository(memory.SeedPeople())
	require.NoError(t, err)
	roster, err := NewRoster(context.Background(), repo, zerolog.Nop())
	require.NoError(t, err)

	clock := debounce.NewVirtualClock(time.Unix(0, 0))
	s := NewSession(roster, dirdomain.NewEngine(dirdomain.DefaultOptions()), memory.NewSavedViewRepository(),
		url.Values{}, SessionConfig{Clock: clock, Window: window})
	t.Cleanup(s.Close)
	return s, clock
}

// Un disparo que ya salió del temporizador cuando llegó otra tecla no debe pisar el término nuevo.
func TestCommitSearch_DescartaTerminoSuperado(t *testing.T) {
	s, clock := newInternalSession(t)

	s.SetSearchTerm("ana")
	s.SetSearchTerm("ana torres")
	s.commitSearch("ana")
	assert.Empty(t, s.View().AppliedSearch)

	clock.Advance(window)
	assert.Equal(t, "ana torres", s.View().AppliedSearch)
}

func TestCommitTags_DescartaEtiquetaSuperada(t *testing.T) {
	s, clock := newInternalSession(t)

	s.SetTagFilter("dele")
	s.SetTagFilter("delegada")
	s.commitTags("dele")
	assert.Empty(t, s.View().AppliedTags)

	clock.Advance(window)
	assert.Equal(t, "delegada", s.View().AppliedTags)
}

func TestCommitSearch_ConfirmaElUltimoTermino(t *testing.T) {
	s, _ := newInternalSession(t)

	s.SetSearchTerm("rosa")
	s.commitSearch("rosa")
	assert.Equal(t, "rosa", s.View().AppliedSearch)
}
