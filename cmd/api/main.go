package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/a2z-projetos/app-codigos-projeto/docs"
	"github.com/a2z-projetos/app-codigos-projeto/internal/api/routes"
	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/logger"
	"github.com/a2z-projetos/app-codigos-projeto/internal/observability"
	"github.com/a2z-projetos/app-codigos-projeto/internal/seed"
	"github.com/a2z-projetos/app-codigos-projeto/internal/storage"
)

// @title           Gerador de Códigos de Projeto API
// @version         1.0
// @description     API para emissão, consulta e legenda de códigos de projeto de 12 segmentos

// @contact.name   A2Z Projetos

// @BasePath  /

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("Servidor encerrado com erro", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := observability.InitTracer(ctx, cfg, zlog); err != nil {
		zlog.Warn("Tracing indisponível, seguindo sem exportar spans", zap.Error(err))
	}
	defer observability.ShutdownTracer(zlog)

	store, err := storage.Open(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			zlog.Warn("Erro ao fechar armazenamento", zap.Error(err))
		}
	}()

	if cfg.SeedOnStartup {
		dict, err := seed.Default()
		if err != nil {
			return err
		}
		if _, err := seed.Seed(ctx, store, dict, zlog); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           routes.SetupRouter(cfg, store, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("Servidor iniciado", zap.String("porta", cfg.ServerPort), zap.String("backend", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
