package entity

import "time"

// ActivityAction tipo de acción registrada en la bitácora.
type ActivityAction string

const (
	ActionCreate         ActivityAction = "Creación"
	ActionUpdate         ActivityAction = "Actualización"
	ActionStatusChange   ActivityAction = "Cambio de Estado"
	ActionExport         ActivityAction = "Exportación"
	ActionInvitationSent ActivityAction = "Invitación Enviada"
	ActionPasswordReset  ActivityAction = "Reseteo de Contraseña"
	ActionCarnet         ActivityAction = "Generar Carnet"
)

// ActivityLog entrada de la bitácora de actividad. Solo se agrega, nunca se modifica.
// Count es la cantidad de personas afectadas (1 en acciones individuales).
type ActivityLog struct {
	ID         string
	Timestamp  time.Time
	Actor      string
	Action     ActivityAction
	Details    string
	TargetUser string
	Count      int
}
