package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrSessionNotFound       = errors.New("sesión no encontrada")
	ErrPendingActionNotFound = errors.New("acción pendiente no encontrada")
	ErrEmptySelection        = errors.New("no hay usuarios seleccionados")
	ErrActionNotApplicable   = errors.New("la acción no aplica a este usuario")
)
