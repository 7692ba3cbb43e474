package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/memory"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/sqlite"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, &config.Config{StorageBackend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)

	path := filepath.Join(t.TempDir(), "codigos.db")
	store, err = Open(ctx, &config.Config{StorageBackend: config.BackendSQLite, SQLitePath: path}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &sqlite.Store{}, store)
	assert.NoError(t, store.Ping(ctx))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageBackend: "mongo"}, zap.NewNop())
	assert.ErrorContains(t, err, "mongo")
}
