package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository"
)

func main() {
	password := flag.String("password", "password123", "password for the demo admin and manager users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("Error opening record store", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	seeder := fixtures.NewSeeder(repos.Transactor, repos.Client, repos.Employee, repos.User)
	result, err := seeder.Seed(ctx, *password)
	if err != nil {
		slog.Error("Seeding failed", "error", err)
		repos.Close()
		os.Exit(1)
	}

	slog.Info("Seeded demo data",
		"clients", result.Clients,
		"employees", result.Employees,
		"users", result.Users,
	)
}
