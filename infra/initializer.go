package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads .env when present; a missing file is fine in deployed
// environments where configuration comes from real environment variables.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
