package main

import (
	"context"
	"log"
	"os"

	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	config.AppConfig.JWTSecret = jwtSecret

	// Initialize database
	database.InitDB(databaseURL)
	defer database.CloseDB()

	if err := database.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Unable to ensure database schema: %v", err)
	}

	// Prime the salon settings cache; defaults cover a failed load.
	cache := config.NewCache()
	if err := handlers.LoadSettings(context.Background(), cache); err != nil {
		log.Printf("Error loading settings, continuing with defaults: %v", err)
	}

	hook := webhook.NewClient(cache)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, cache, hook)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	log.Fatal(app.Listen(addr))
}
