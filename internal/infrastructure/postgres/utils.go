package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation identidad o id ya existente.
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isCheckViolation kind o estado fuera del dominio de la tabla.
func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }
