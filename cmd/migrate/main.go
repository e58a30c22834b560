package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/portaprosoftware/portapro-backend/internal/config"
	"github.com/portaprosoftware/portapro-backend/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var cmd string
	flag.StringVar(&cmd, "cmd", "up", "migration command (up, down, status)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set goose dialect", "error", err)
		os.Exit(1)
	}

	switch cmd {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		logger.Error("unknown migration command", "cmd", cmd)
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migration failed", "cmd", cmd, "error", err)
		os.Exit(1)
	}

	logger.Info("migration finished", "cmd", cmd)
}
