package directory

import (
	"fmt"
	"time"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// ActionKind acción aplicable sobre usuarios.
type ActionKind string

const (
	ActionActivate         ActionKind = "activate"
	ActionSuspend          ActionKind = "suspend"
	ActionResendInvitation ActionKind = "resend-invitation"
	ActionGenerateDocument ActionKind = "generate-document"
	ActionExport           ActionKind = "export"
	ActionResetPassword    ActionKind = "reset-password"
	ActionGenerateCarnet   ActionKind = "generate-carnet"
)

// Scope alcance de una acción.
type Scope string

const (
	ScopeBulk   Scope = "bulk"
	ScopeSingle Scope = "single"
)

// BulkKinds acciones masivas reconocidas.
var BulkKinds = []ActionKind{ActionActivate, ActionSuspend, ActionResendInvitation, ActionGenerateDocument, ActionExport}

// SingleKinds acciones individuales reconocidas.
var SingleKinds = []ActionKind{ActionSuspend, ActionResetPassword, ActionResendInvitation, ActionGenerateCarnet}

func (k ActionKind) in(set []ActionKind) bool {
	for _, v := range set {
		if v == k {
			return true
		}
	}
	return false
}

// IsBulk indica si k es una acción masiva.
func (k ActionKind) IsBulk() bool { return k.in(BulkKinds) }

// IsSingle indica si k es una acción individual.
func (k ActionKind) IsSingle() bool { return k.in(SingleKinds) }

// needsConfirmation toda acción masiva se confirma; en individuales solo suspender
// y restablecer contraseña.
func (k ActionKind) needsConfirmation(scope Scope) bool {
	if scope == ScopeBulk {
		return true
	}
	return k == ActionSuspend || k == ActionResetPassword
}

// keepsSelection exportar y generar documentos son de solo lectura.
func (k ActionKind) keepsSelection() bool {
	return k == ActionExport || k == ActionGenerateDocument
}

// PendingAction acción en espera de confirmación. No tiene efecto hasta resolverse.
type PendingAction struct {
	ID             string
	Kind           ActionKind
	Scope          Scope
	SessionID      string
	Targets        []string
	TargetName     string
	Title          string
	Message        string
	ConfirmText    string
	RequiresReason bool
	CreatedAt      time.Time

	session *Session
}

// Confirmation datos a mostrar por el colaborador de confirmación.
func (p *PendingAction) Confirmation() ConfirmationRequest {
	return ConfirmationRequest{
		Title:          p.Title,
		Message:        p.Message,
		ConfirmText:    p.ConfirmText,
		RequiresReason: p.RequiresReason,
	}
}

// ActionResult resultado de una acción resuelta.
type ActionResult struct {
	Kind      ActionKind
	Scope     Scope
	Cancelled bool
	Affected  int
	Log       *entity.ActivityLog
	Artifact  *Artifact
}

func bulkPrompt(p *PendingAction) {
	n := len(p.Targets)
	switch p.Kind {
	case ActionActivate:
		p.Title = "Activar Usuarios"
		p.Message = fmt.Sprintf("¿Está seguro de que desea activar %d usuarios seleccionados?", n)
		p.ConfirmText = "Sí, Activar"
	case ActionSuspend:
		p.Title = "Suspender Usuarios"
		p.Message = fmt.Sprintf("¿Está seguro de que desea suspender %d usuarios seleccionados?", n)
		p.ConfirmText = "Sí, Suspender"
	case ActionResendInvitation:
		p.Title = "Reenviar Invitaciones"
		p.Message = fmt.Sprintf("¿Está seguro de que desea reenviar la invitación a %d usuarios seleccionados?", n)
		p.ConfirmText = "Sí, Reenviar"
	case ActionGenerateDocument:
		p.Title = "Generar Carnets"
		p.Message = fmt.Sprintf("Se generarán carnets para los estudiantes entre %d usuarios seleccionados. ¿Desea continuar?", n)
		p.ConfirmText = "Sí, Generar"
	case ActionExport:
		p.Title = "Exportar Usuarios"
		p.Message = fmt.Sprintf("Se exportarán los datos de %d usuarios seleccionados. ¿Desea continuar?", n)
		p.ConfirmText = "Sí, Exportar"
	}
}

func singlePrompt(p *PendingAction, email string) {
	switch p.Kind {
	case ActionSuspend:
		p.Title = "Suspender Usuario"
		p.Message = fmt.Sprintf("¿Desea suspender la cuenta de %s? No podrá acceder al sistema.", p.TargetName)
		p.ConfirmText = "Sí, Suspender"
		p.RequiresReason = true
	case ActionResetPassword:
		p.Title = "Restablecer Contraseña"
		p.Message = fmt.Sprintf("Se enviará un enlace seguro para restablecer la contraseña a %s. ¿Desea continuar?", email)
		p.ConfirmText = "Sí, Enviar Enlace"
	}
}
