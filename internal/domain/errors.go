package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrSourceUnavailable la fuente de transacciones no respondió o respondió con estado distinto de "success".
	ErrSourceUnavailable = errors.New("fuente de transacciones no disponible")
)

// ValidationError error de validación con el campo afectado. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite comparar contra ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid atajo para construir un ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
