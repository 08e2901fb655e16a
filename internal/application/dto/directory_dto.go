package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveUserRequest alta o edición de una persona. Identity vacío crea una nueva.
type SaveUserRequest struct {
	Identity string   `json:"identity" validate:"omitempty,numeric,min=8,max=12"`
	UserType string   `json:"user_type" validate:"required,oneof=Estudiante Apoderado Personal Director Administrativo Docente Apoyo"`
	Name     string   `json:"name" validate:"omitempty,min=1,max=200"`
	Status   string   `json:"status" validate:"omitempty,oneof=Activo Inactivo Suspendido Pendiente Egresado"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
	Area     string   `json:"area" validate:"omitempty,max=100"`
	Phone    string   `json:"phone" validate:"omitempty,max=30"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Relation string   `json:"relation" validate:"omitempty,max=50"`
	Grade    string   `json:"grade" validate:"omitempty,max=50"`
	Section  string   `json:"section" validate:"omitempty,max=10"`
}

// PersonResponse fila del directorio, plana para cualquier variante.
type PersonResponse struct {
	Identity             string           `json:"identity"`
	Kind                 string           `json:"kind"`
	Name                 string           `json:"name"`
	Role                 string           `json:"role"`
	Level                string           `json:"level"`
	Email                string           `json:"email"`
	Status               string           `json:"status"`
	Tags                 []string         `json:"tags"`
	AvatarURL            string           `json:"avatar_url,omitempty"`
	LastLogin            *time.Time       `json:"last_login"`
	StudentCode          string           `json:"student_code,omitempty"`
	Area                 string           `json:"area,omitempty"`
	Category             string           `json:"category,omitempty"`
	Grade                string           `json:"grade,omitempty"`
	Section              string           `json:"section,omitempty"`
	AverageGrade         *decimal.Decimal `json:"average_grade,omitempty"`
	AttendancePercentage *decimal.Decimal `json:"attendance_percentage,omitempty"`
	AcademicRisk         bool             `json:"academic_risk,omitempty"`
	Relation             string           `json:"relation,omitempty"`
	Verified             bool             `json:"verified,omitempty"`
	Phone                string           `json:"phone,omitempty"`
}

// UpdateFiltersRequest cambio parcial de filtros; los campos ausentes no cambian.
type UpdateFiltersRequest struct {
	SearchTerm *string `json:"search_term" validate:"omitempty,max=100"`
	TagFilter  *string `json:"tag_filter" validate:"omitempty,max=40"`
	Status     *string `json:"status" validate:"omitempty,oneof=Todos Activo Inactivo Suspendido Pendiente Egresado"`
	Level      *string `json:"level" validate:"omitempty,max=50"`
	Role       *string `json:"role" validate:"omitempty,max=50"`
	Reset      bool    `json:"reset"`
	Immediate  bool    `json:"immediate"`
}

// TabRequest cambio de pestaña.
type TabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=Todos Personal Estudiantes Apoderados"`
}

// SortRequest clic en el encabezado de una columna.
type SortRequest struct {
	Key string `json:"key" validate:"required,max=50"`
}

// GoToPageRequest cambio de página.
type GoToPageRequest struct {
	Page int `json:"page" validate:"min=1"`
}

// SelectPageRequest casilla "seleccionar todo" de la página.
type SelectPageRequest struct {
	Checked bool `json:"checked"`
}

// ActionRequest acción masiva o individual.
type ActionRequest struct {
	Kind string `json:"kind" validate:"required,max=40"`
}

// DecisionRequest confirmación de una acción pendiente.
type DecisionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// SaveViewRequest guardar la vista actual.
type SaveViewRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

// PendingActionResponse acción que espera confirmación.
type PendingActionResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Scope          string    `json:"scope"`
	Count          int       `json:"count"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	ConfirmText    string    `json:"confirm_text"`
	RequiresReason bool      `json:"requires_reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActionResultResponse resultado de aplicar o cancelar una acción.
type ActionResultResponse struct {
	Kind      string                `json:"kind"`
	Scope     string                `json:"scope"`
	Cancelled bool                  `json:"cancelled"`
	Affected  int                   `json:"affected"`
	Log       *ActivityLogResponse  `json:"log,omitempty"`
	Artifact  *ArtifactInfoResponse `json:"artifact,omitempty"`
}

// ArtifactInfoResponse metadatos del archivo generado (el contenido va en base64).
type ArtifactInfoResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Digest      string `json:"digest,omitempty"`
	Content     []byte `json:"content"`
}

// ActivityLogResponse entrada de la bitácora.
type ActivityLogResponse struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	TargetUser string    `json:"target_user,omitempty"`
	Count      int       `json:"count"`
}

// SaveUserResponse persona guardada.
type SaveUserResponse struct {
	Created bool           `json:"created"`
	User    PersonResponse `json:"user"`
}
