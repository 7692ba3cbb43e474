// Package postgres implementa repository.Store sobre PostgreSQL: pool pgx,
// migrações embutidas aplicadas com golang-migrate e SQL puro, sem ORM.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect cria o pool de conexões e verifica a disponibilidade com ping
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	logger.Info("Conexão com PostgreSQL estabelecida",
		zap.String("host", cfg.DBHost),
		zap.Int("port", cfg.DBPort),
		zap.String("database", cfg.DBName),
	)
	return pool, nil
}

// Migrate aplica as migrações embutidas no banco configurado
func Migrate(cfg *config.Config, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("erro ao inicializar migrações: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("Migrações aplicadas",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
