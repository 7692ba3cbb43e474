// Package storage escolhe e inicializa o backend de armazenamento configurado.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/memory"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/postgres"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/sqlite"
	"github.com/a2z-projetos/app-codigos-projeto/internal/typesense"
)

// Open inicializa o backend indicado por STORAGE_BACKEND, aplicando migrações
// ou criando coleções conforme o caso
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	logger = logger.With(zap.String("backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if err := postgres.Migrate(cfg, logger); err != nil {
			return nil, err
		}
		pool, err := postgres.Connect(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool), nil

	case config.BackendSQLite:
		return sqlite.NewStore(cfg.SQLitePath, logger)

	case config.BackendTypesense:
		client := typesense.NewClient(cfg, logger)
		if err := client.EnsureCollections(ctx); err != nil {
			return nil, fmt.Errorf("erro ao preparar coleções do Typesense: %w", err)
		}
		return client, nil

	case config.BackendMemory:
		logger.Warn("Armazenamento em memória: os dados não sobrevivem ao processo")
		return memory.New(), nil
	}

	return nil, fmt.Errorf("backend de armazenamento desconhecido: %q", cfg.StorageBackend)
}
