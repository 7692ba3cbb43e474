// Package repositorytest reúne os testes de contrato que todo backend de
// repository.Store precisa passar.
package repositorytest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
)

// Factory cria um Store vazio para um subteste
type Factory func(t *testing.T) repository.Store

// Run executa a suíte de contrato contra o backend criado por newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("códigos", func(t *testing.T) { testCodes(t, newStore(t)) })
	t.Run("número duplicado", func(t *testing.T) { testDuplicateNumber(t, newStore(t)) })
	t.Run("exclusão libera número", func(t *testing.T) { testDeleteFreesNumber(t, newStore(t)) })
	t.Run("listagem paginada", func(t *testing.T) { testListCodes(t, newStore(t)) })
	t.Run("inserções concorrentes", func(t *testing.T) { testConcurrentInsert(t, newStore(t)) })
	t.Run("opções", func(t *testing.T) { testOptions(t, newStore(t)) })
	t.Run("reativação de opção", func(t *testing.T) { testReactivate(t, newStore(t)) })
}

func issued(numero string, at time.Time) codigo.IssuedCode {
	return codigo.IssuedCode{
		Name:       "Projeto " + numero,
		Identifier: "IGU-A2Z-RJ-A-002-20-E-H-DE-" + numero + "-150724-R0",
		Numero:     numero,
		AuthorID:   "u1",
		AuthorName: "Maria",
		CreatedAt:  at,
	}
}

func testCodes(t *testing.T, store repository.Store) {
	ctx := context.Background()

	numbers, err := store.ListNumbers(ctx)
	require.NoError(t, err)
	assert.Empty(t, numbers)

	saved, err := store.InsertCode(ctx, issued("0001", time.Time{}))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := store.GetCode(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Identifier, got.Identifier)
	assert.Equal(t, "0001", got.Numero)
	assert.Equal(t, "Maria", got.AuthorName)

	numbers, err = store.ListNumbers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001"}, numbers)

	_, err = store.GetCode(ctx, "inexistente")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.DeleteCode(ctx, "inexistente"), repository.ErrNotFound)
	assert.NoError(t, store.Ping(ctx))
}

func testDuplicateNumber(t *testing.T, store repository.Store) {
	ctx := context.Background()

	_, err := store.InsertCode(ctx, issued("0007", time.Time{}))
	require.NoError(t, err)

	_, err = store.InsertCode(ctx, issued("0007", time.Time{}))
	assert.ErrorIs(t, err, repository.ErrDuplicateNumber)

	count, err := store.CountCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func testDeleteFreesNumber(t *testing.T, store repository.Store) {
	ctx := context.Background()

	saved, err := store.InsertCode(ctx, issued("0003", time.Time{}))
	require.NoError(t, err)
	require.NoError(t, store.DeleteCode(ctx, saved.ID))

	numbers, err := store.ListNumbers(ctx)
	require.NoError(t, err)
	assert.Empty(t, numbers)

	_, err = store.InsertCode(ctx, issued("0003", time.Time{}))
	assert.NoError(t, err)
}

func testListCodes(t *testing.T, store repository.Store) {
	ctx := context.Background()
	base := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		_, err := store.InsertCode(ctx, issued(fmt.Sprintf("%04d", i), base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := store.ListCodes(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "0005", page[0].Numero)
	assert.Equal(t, "0004", page[1].Numero)

	page, err = store.ListCodes(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "0001", page[0].Numero)

	page, err = store.ListCodes(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, page)

	count, err := store.CountCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func testConcurrentInsert(t *testing.T, store repository.Store) {
	ctx := context.Background()
	const workers = 8

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		ok, dupErr int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.InsertCode(ctx, issued("0042", time.Time{}))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, repository.ErrDuplicateNumber) {
				dupErr++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok, "apenas uma inserção pode vencer")
	assert.Equal(t, workers-1, dupErr)
}

func testOptions(t *testing.T, store repository.Store) {
	ctx := context.Background()

	opt, err := store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryEmpresa, Value: "A2Z", Label: "A2Z - A2Z PROJETOS",
	})
	require.NoError(t, err)
	assert.True(t, opt.Active)

	_, err = store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryEmpresa, Value: "A2Z", Label: "A2Z - OUTRA",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateOption)

	// mesmo valor em outra categoria é permitido
	_, err = store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryContratante, Value: "A2Z", Label: "A2Z - CONTRATANTE",
	})
	require.NoError(t, err)

	opts, err := store.ListOptions(ctx, codigo.CategoryEmpresa)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "A2Z - A2Z PROJETOS", opts[0].Label)
	assert.Equal(t, codigo.CategoryEmpresa, opts[0].Category)

	require.NoError(t, store.DeactivateOption(ctx, codigo.CategoryEmpresa, "A2Z"))
	opts, err = store.ListOptions(ctx, codigo.CategoryEmpresa)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.False(t, opts[0].Active)

	assert.ErrorIs(t, store.DeactivateOption(ctx, codigo.CategoryEmpresa, "A2Z"), repository.ErrNotFound)
	assert.ErrorIs(t, store.DeactivateOption(ctx, codigo.CategoryEtapa, "X"), repository.ErrNotFound)
}

func testReactivate(t *testing.T, store repository.Store) {
	ctx := context.Background()

	_, err := store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryEtapa, Value: "E", Label: "E - EXECUTIVO",
	})
	require.NoError(t, err)
	require.NoError(t, store.DeactivateOption(ctx, codigo.CategoryEtapa, "E"))

	// outro rótulo mudaria a legenda dos códigos já emitidos com "E"
	_, err = store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryEtapa, Value: "E", Label: "E - PROJETO EXECUTIVO",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateOption)

	opts, err := store.ListOptions(ctx, codigo.CategoryEtapa)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.False(t, opts[0].Active)
	assert.Equal(t, "E - EXECUTIVO", opts[0].Label)

	opt, err := store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryEtapa, Value: "E", Label: " e - executivo ",
	})
	require.NoError(t, err)
	assert.True(t, opt.Active)
	assert.Equal(t, "E - EXECUTIVO", opt.Label)

	opts, err = store.ListOptions(ctx, codigo.CategoryEtapa)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.True(t, opts[0].Active)
	assert.Equal(t, "E - EXECUTIVO", opts[0].Label)
}
