package codigo

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validação falhou")
	ErrEmptyField          = errors.New("campo obrigatório vazio")
	ErrInvalidSegment      = errors.New("valor não pode conter '-'")
	ErrInvalidNumber       = errors.New("número sequencial inválido")
	ErrInvalidDate         = errors.New("data inválida")
	ErrUnknownCategory     = errors.New("categoria desconhecida")
	ErrMalformedIdentifier = errors.New("código inválido")
	ErrEmptyName           = errors.New("nome vazio após normalização")
	ErrSequenceExhausted   = errors.New("números sequenciais esgotados")
)

// ValidationError descreve um campo rejeitado. Satisfaz errors.Is tanto para
// ErrValidation quanto para a causa específica em Err.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// MalformedIdentifierError indica um código que não tem exatamente 12 segmentos
type MalformedIdentifierError struct {
	Identifier string
	Segments   int
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("código inválido %q: %d segmentos, esperado %d", e.Identifier, e.Segments, SegmentCount)
}

func (e *MalformedIdentifierError) Unwrap() error {
	return ErrMalformedIdentifier
}
