package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/repositorytest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "codigos.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.Store {
		return newTestStore(t)
	})
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados", "codigos.db")

	store, err := NewStore(path, zap.NewNop())
	require.NoError(t, err)
	_, err = store.InsertCode(t.Context(), codigo.IssuedCode{Name: "Projeto", Identifier: "X", Numero: "0001"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// a segunda abertura não reaplica migrações
	store, err = NewStore(path, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	numbers, err := store.ListNumbers(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"0001"}, numbers)
	assert.Equal(t, path, store.Path())
}
