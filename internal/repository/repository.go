// Package repository define os contratos de armazenamento do registro de
// códigos e do dicionário de opções. As implementações ficam nos subpacotes
// (memory, postgres, sqlite) e em internal/typesense.
package repository

import (
	"context"
	"errors"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
)

// Erros do armazenamento
var (
	// ErrNotFound indica registro inexistente
	ErrNotFound = errors.New("registro não encontrado")
	// ErrDuplicateNumber indica que o número sequencial já está em uso.
	// É o único erro que a alocação automática trata como recuperável.
	ErrDuplicateNumber = errors.New("número sequencial já utilizado")
	// ErrDuplicateOption indica opção ativa com o mesmo valor na categoria
	ErrDuplicateOption = errors.New("opção já cadastrada na categoria")
)

// CodeRegistry persiste os códigos emitidos. A unicidade de numero é garantida
// pelo armazenamento e violada com ErrDuplicateNumber.
type CodeRegistry interface {
	// ListNumbers devolve os números de todos os códigos emitidos
	ListNumbers(ctx context.Context) ([]string, error)
	// InsertCode grava o código; ID e CreatedAt são preenchidos se vazios
	InsertCode(ctx context.Context, code codigo.IssuedCode) (codigo.IssuedCode, error)
	// DeleteCode remove o código e libera o número
	DeleteCode(ctx context.Context, id string) error
	GetCode(ctx context.Context, id string) (codigo.IssuedCode, error)
	// ListCodes lista os códigos do mais recente para o mais antigo
	ListCodes(ctx context.Context, limit, offset int) ([]codigo.IssuedCode, error)
	CountCodes(ctx context.Context) (int, error)
}

// OptionStore persiste as opções do dicionário
type OptionStore interface {
	// ListOptions devolve as opções da categoria, ativas e inativas
	ListOptions(ctx context.Context, category codigo.Category) ([]codigo.CategoryOption, error)
	// RegisterOption cadastra a opção. Uma opção inativa com a mesma chave só é
	// reativada se o rótulo for o mesmo (utils.MesmoRotulo), mantendo o rótulo
	// gravado; com outro rótulo, ou com a opção ativa, o resultado é
	// ErrDuplicateOption.
	RegisterOption(ctx context.Context, opt codigo.CategoryOption) (codigo.CategoryOption, error)
	// DeactivateOption desativa a opção sem removê-la
	DeactivateOption(ctx context.Context, category codigo.Category, value string) error
}

// Store agrupa os dois registros sobre um mesmo backend
type Store interface {
	CodeRegistry
	OptionStore
	Ping(ctx context.Context) error
	Close() error
}
