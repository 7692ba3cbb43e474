package services

import (
	"errors"
	"fmt"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
)

var (
	// ErrAllocationConflict indica que todas as tentativas de alocação
	// encontraram o número já ocupado por outra gravação concorrente
	ErrAllocationConflict = errors.New("não foi possível alocar um número sequencial livre")
	// ErrUnknownOption indica valor ausente das opções ativas da categoria
	ErrUnknownOption = errors.New("valor não cadastrado na categoria")
)

// UnknownOptionError é um erro de validação: o valor informado para a
// categoria não está entre as opções ativas
type UnknownOptionError struct {
	Category codigo.Category
	Value    string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Category.Key(), e.Value, ErrUnknownOption)
}

func (e *UnknownOptionError) Unwrap() []error {
	return []error{codigo.ErrValidation, ErrUnknownOption}
}
