package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/tacohut-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// writeError traduce un error de INSERT/UPDATE: clave duplicada → ErrDuplicate, CHECK
// (stock o montos negativos) → ErrInvalidInput, FK → ErrNotFound. El resto se envuelve con what.
func writeError(err error, what string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", what, err)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%s: %w", what, domain.ErrDuplicate)
	case pgCheckViolation:
		return domain.Invalid(pgErr.ConstraintName, "viola una restricción de la base de datos")
	case pgForeignKeyViolation:
		return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// rowsOrNotFound traduce "0 filas afectadas" a domain.ErrNotFound.
func rowsOrNotFound(affected int64) error {
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
