package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kdanso/campus-ministry-backend/config"
	"github.com/kdanso/campus-ministry-backend/database"
	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
	"github.com/kdanso/campus-ministry-backend/internal/auth"
	"github.com/kdanso/campus-ministry-backend/internal/event"
	"github.com/kdanso/campus-ministry-backend/internal/lookup"
	"github.com/kdanso/campus-ministry-backend/internal/member"
	"github.com/kdanso/campus-ministry-backend/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	models := append(lookup.Models(),
		&member.Member{},
		&event.Event{},
		&event.MemberEventLink{},
		&auth.User{},
		&auditlog.AuditLog{},
	)
	if err := db.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed the admin account from environment config
	if err := auth.SeedAdminUser(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin user: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	routes.Setup(router, cfg)

	addr := ":" + cfg.Port
	log.Printf("🚀 Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
