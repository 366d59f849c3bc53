package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dormkeep/registry-service/config"
	"github.com/dormkeep/registry-service/internal/jsonstore"
	"github.com/dormkeep/registry-service/internal/repository"
	"github.com/dormkeep/registry-service/internal/service"
	transport "github.com/dormkeep/registry-service/internal/transport/http"
	"github.com/dormkeep/registry-service/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting registry-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	store := jsonstore.NewFileStore()
	roomRepo := repository.NewRoomRepository(store, cfg.Storage.RoomsPath)
	studentRepo := repository.NewStudentRepository(store, cfg.Storage.StudentsPath)

	roomSvc := service.NewRoomService(roomRepo)
	studentSvc := service.NewStudentService(studentRepo, roomRepo)
	combinedSvc := service.NewCombinedService(roomRepo, studentRepo)

	handler := transport.NewHandler(roomSvc, studentSvc, combinedSvc)
	router := transport.NewRouter(handler)

	srv := transport.NewServer(transport.ServerConfig{Addr: cfg.HTTP.Addr}, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("http listen", "addr", cfg.HTTP.Addr)
	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "err", err)
		return err
	}
	slog.Info("stopped")
	return nil
}
