package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subject, f.data = subject, data
	return f.err
}

func TestNATSNotifier_PublicaEventoSaneado(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNATSNotifier(pub, "", "api-1")
	n.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	err := n.Notify(context.Background(), "<b>3 usuarios</b> activados", &appdir.NotificationAction{Label: "Ver Usuario", Path: "/usuarios?q=1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultSubject, pub.subject)

	var ev Event
	require.NoError(t, json.Unmarshal(pub.data, &ev))
	assert.Equal(t, "3 usuarios activados", ev.Message)
	assert.Equal(t, "api-1", ev.Source)
	require.NotNil(t, ev.Action)
	assert.Equal(t, "/usuarios?q=1", ev.Action.Path)
}

func TestNATSNotifier_ErrorDePublicacion(t *testing.T) {
	pub := &fakePublisher{err: errors.New("sin conexión")}
	err := NewNATSNotifier(pub, "x", "").Notify(context.Background(), "hola", nil)
	assert.ErrorContains(t, err, "sin conexión")
}

func TestLogNotifier_EscribeMensaje(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))
	require.NoError(t, n.Notify(context.Background(), "<i>Perfil creado</i>", nil))
	assert.Contains(t, buf.String(), `"mensaje":"Perfil creado"`)
}

type failingNotifier struct{ calls int }

func (f *failingNotifier) Notify(context.Context, string, *appdir.NotificationAction) error {
	f.calls++
	return errors.New("falló")
}

func TestMulti_ContinuaTrasFallo(t *testing.T) {
	first := &failingNotifier{}
	pub := &fakePublisher{}
	m := Multi{first, nil, NewNATSNotifier(pub, "s", "")}

	err := m.Notify(context.Background(), "hola", nil)
	assert.Error(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, "s", pub.subject)
}

func TestConnectNATS_URLVacia(t *testing.T) {
	_, err := ConnectNATS("", "api")
	assert.Error(t, err)
}
