package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/config"
)

var DB *gorm.DB

// Connect opens the Postgres connection and keeps the handle in the
// package-level DB for route wiring.
func Connect(cfg *config.Config) *gorm.DB {
	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey so services can turn them into conflicts.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(fmt.Sprintf("❌ Failed to connect to database: %v", err))
	}

	log.Println("✅ Connected to database")
	DB = db
	return db
}
