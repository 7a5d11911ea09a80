package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"shipment-address-service/internal/adapters/repositories"
	"shipment-address-service/internal/config"
	"shipment-address-service/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/shipments.json")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	repo := repositories.NewPostgresShipmentRepository(conn)
	if err := repositories.SeedFromJSON(context.Background(), repo, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
