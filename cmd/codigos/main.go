// Command codigos é a ferramenta de linha de comando do gerador de códigos de
// projeto: prepara o armazenamento, cadastra o dicionário padrão e emite ou
// decodifica códigos sem passar pela API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/logger"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
	"github.com/a2z-projetos/app-codigos-projeto/internal/storage"
)

// storeOpener abre o armazenamento configurado
type storeOpener func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error)

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	open   storeOpener

	backend    string
	sqlitePath string
	verbose    bool
}

func main() {
	if err := newRootCmd(&app{open: storage.Open}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "codigos",
		Short:         "Gerador de códigos de projeto",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.backend, "backend", "", "backend de armazenamento (postgres, sqlite, typesense, memory); padrão STORAGE_BACKEND")
	root.PersistentFlags().StringVar(&a.sqlitePath, "sqlite", "", "arquivo SQLite; padrão SQLITE_PATH")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "logs em nível debug")

	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newAbbreviateCmd(a),
		newNextCmd(a),
		newLegendCmd(a),
		newEncodeCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.StorageBackend = a.backend
	}
	if a.sqlitePath != "" {
		cfg.SQLitePath = a.sqlitePath
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		l, err := logger.New(cfg.LogLevel, "console")
		if err != nil {
			return err
		}
		a.logger = l
	}
	return nil
}

// withServices abre o armazenamento, monta os serviços e fecha tudo ao final
func (a *app) withServices(ctx context.Context, fn func(store repository.Store, codes *services.CodeService, options *services.OptionService) error) error {
	store, err := a.open(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("Erro ao fechar armazenamento", zap.Error(err))
		}
	}()

	options := services.NewOptionService(store, a.logger)
	codes := services.NewCodeService(store, options, a.cfg.Allocation, a.logger)
	return fn(store, codes, options)
}
