package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DatabaseURL string

	JWTAccessSecret   string
	JWTAccessTTLHours int

	// ✅ Redis Config (optional; rate limiter falls back to memory store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Seed admin (created at startup only when all three are set)
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads environment variables and returns a Config object.
// DATABASE_URL and JWT_ACCESS_SECRET are required; the process refuses
// to start without them rather than falling back to a baked-in value.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(os.Getenv("JWT_ACCESS_TTL_HOURS"))
	if accessTTL <= 0 {
		accessTTL = 2
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTAccessTTLHours: accessTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("❌ DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		log.Fatal("❌ JWT_ACCESS_SECRET is required")
	}

	return cfg
}
