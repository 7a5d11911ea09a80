package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"shipment-address-service/internal/adapters/repositories"
	"shipment-address-service/internal/api"
	"shipment-address-service/internal/config"
	"shipment-address-service/internal/platform/db"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the configured SQL repository behind the port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, repo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(context.Background(), conn, repo, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s driver=%s", cfg.Port, cfg.DBDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRepository(cfg config.Config) (*sql.DB, *repositories.SQLShipmentRepository, error) {
	if cfg.DBDriver == config.DriverPostgres {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewPostgresShipmentRepository(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return conn, repositories.NewSqliteShipmentRepository(conn), nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, repo *repositories.SQLShipmentRepository, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, repo, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
