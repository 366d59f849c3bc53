package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dormkeep/registry-service/config"
	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/jsonstore"
	"github.com/dormkeep/registry-service/internal/repository"
	"github.com/dormkeep/registry-service/pkg/logger"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write starter rooms and students when the data files are empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
	}
}

func runSeed(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(logger.Config{
		Env:     logger.Env(cfg.Logging.Env),
		Service: cfg.Logging.Service,
		Backend: logger.Backend(cfg.Logging.Backend),
	})

	if ctx == nil {
		ctx = context.Background()
	}

	store := jsonstore.NewFileStore()
	roomRepo := repository.NewRoomRepository(store, cfg.Storage.RoomsPath)
	studentRepo := repository.NewStudentRepository(store, cfg.Storage.StudentsPath)

	rooms, err := roomRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(rooms) > 0 {
		slog.Info("rooms file already has data, skipping seed",
			"path", cfg.Storage.RoomsPath, "count", len(rooms))
		return nil
	}

	slog.Info("seeding starter data",
		"rooms", cfg.Storage.RoomsPath, "students", cfg.Storage.StudentsPath)

	a, err := roomRepo.Create(ctx, "Room #1")
	if err != nil {
		return err
	}
	b, err := roomRepo.Create(ctx, "Room #2")
	if err != nil {
		return err
	}

	seedStudents := []domain.NewStudent{
		{Name: "Alice Johnson", Room: a.ID, Sex: "F", Birthday: mustBirthday("2011-08-22T00:00:00.000000")},
		{Name: "Bob Smith", Room: a.ID, Sex: "M", Birthday: mustBirthday("2012-01-05T00:00:00.000000")},
		{Name: "Carol White", Room: b.ID, Sex: "F", Birthday: mustBirthday("2010-11-30T00:00:00.000000")},
	}
	for _, in := range seedStudents {
		if _, err := studentRepo.Create(ctx, in); err != nil {
			return err
		}
	}

	slog.Info("seed complete", "rooms", 2, "students", len(seedStudents))
	return nil
}

func mustBirthday(s string) time.Time {
	ts, err := time.Parse(domain.BirthdayLayout, s)
	if err != nil {
		panic(err)
	}
	return ts
}
