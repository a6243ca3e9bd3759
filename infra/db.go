package infra

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDB connects to PostgreSQL when DB_NAME is set, and falls back to an
// in-memory sqlite database otherwise (local development and tests).
// TranslateError lets unique-index violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func SetupDB() *gorm.DB {
	dbName := os.Getenv("DB_NAME")

	if dbName != "" {
		sslmode := "disable"
		if os.Getenv("ENV") == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			dbName,
			os.Getenv("DB_PORT"),
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			panic("Failed to connect to database")
		}
		log.Println("Setup postgres database")
		return db
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to database")
	}
	log.Println("Setup sqlite database (in-memory)")
	return db
}

// SetupTokenDB opens the sqlite database backing the token blacklist. Kept
// separate from the main store so revoked tokens survive restarts even when
// the main store runs in-memory.
func SetupTokenDB() *gorm.DB {
	path := os.Getenv("TOKEN_DB_PATH")
	if path == "" {
		path = "token_blacklist.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to token blacklist database")
	}
	log.Println("Setup token blacklist sqlite database")
	return db
}
