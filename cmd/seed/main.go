package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/portaprosoftware/portapro-backend/internal/config"
	"github.com/portaprosoftware/portapro-backend/internal/repository"
	"github.com/portaprosoftware/portapro-backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: seed drivers, 2: seed shift templates, 3: seed shift assignments)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		seed.Drivers(repo, n)
	case 2:
		seed.ShiftTemplates(repo, n)
	case 3:
		seed.Assignments(repo, n)
	default:
		logger.Error("unknown operation", "op", op)
		os.Exit(1)
	}
}
