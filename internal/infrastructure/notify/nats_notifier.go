package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
)

// DefaultSubject subject por defecto de los avisos del directorio.
const DefaultSubject = "directorio.notificaciones"

// Publisher lo que el notificador necesita de la conexión; *nats.Conn lo cumple.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Event carga publicada en el subject.
type Event struct {
	Source  string                     `json:"source"`
	Message string                     `json:"message"`
	Action  *appdir.NotificationAction `json:"action,omitempty"`
	SentAt  time.Time                  `json:"sent_at"`
}

// NATSNotifier publica los avisos como eventos JSON.
type NATSNotifier struct {
	pub     Publisher
	subject string
	source  string
	now     func() time.Time
}

var _ appdir.Notifier = (*NATSNotifier)(nil)

func NewNATSNotifier(pub Publisher, subject, source string) *NATSNotifier {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSNotifier{pub: pub, subject: subject, source: source, now: time.Now}
}

func (n *NATSNotifier) Notify(ctx context.Context, message string, action *appdir.NotificationAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(Event{
		Source:  n.source,
		Message: clean(message),
		Action:  action,
		SentAt:  n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: serializar evento: %w", err)
	}
	if err := n.pub.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("notify: publicar en %s: %w", n.subject, err)
	}
	return nil
}

// ConnectNATS abre la conexión con el servidor NATS.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	if url == "" {
		return nil, fmt.Errorf("nats url must not be empty")
	}
	nc, err := nats.Connect(url, nats.Name(name), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to nats: %w", err)
	}
	return nc, nil
}
