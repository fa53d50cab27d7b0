package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"pachislot_analytics/internal/config"
	"pachislot_analytics/internal/config/env"
	"pachislot_analytics/internal/investigate"
	"pachislot_analytics/internal/repository/spec_repo"

	_ "github.com/lib/pq"
)

func main() {
	if err := config.Load(".env"); err != nil {
		slog.Debug("no .env file", "error", err)
	}

	cfg, err := investigate.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("investigation failed", "machine_id", cfg.MachineID, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg investigate.Config) error {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	specs, err := spec_repo.NewSpecRepository(spec_repo.DefaultSpecs()...)
	if err != nil {
		return err
	}
	extra, err := env.NewMachineSpecsFromYAML(cfg.SpecPath)
	if err != nil {
		return err
	}
	for _, spec := range extra {
		if err := specs.Register(spec); err != nil {
			return err
		}
	}

	machine, records, err := investigate.LoadMachine(ctx, db, cfg.MachineID)
	if err != nil {
		return err
	}

	return investigate.BuildReport(*machine, records, specs).Write(os.Stdout)
}
