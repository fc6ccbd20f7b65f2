package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string `default:"development"`
	Port      string `default:"8082"`
	OriginURL string

	DatabaseURL string
	DBHost      string `default:"localhost"`
	DBPort      string `default:"5432"`
	DBUser      string `default:"postgres"`
	DBPassword  string `default:"postgres"`
	DBName      string `default:"bakery"`
	DBSSLMode   string `default:"disable"`
	DBMaxConns  int32  `default:"10"`

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration `default:"5m"`

	SMTPHost string
	SMTPPort int `default:"587"`
	SMTPUser string
	SMTPPass string
	SMTPFrom string
	NotifyTo string

	CloudinaryURL string

	AdminUsername     string `default:"admin"`
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration `default:"24h"`
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		Port:              getEnv("APP_PORT", os.Getenv("PORT")),
		OriginURL:         os.Getenv("ORIGIN_URL"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSSLMode:         os.Getenv("DB_SSLMODE"),
		DBMaxConns:        int32(getEnvInt("DB_MAX_CONNS", 0)),
		RedisURL:          os.Getenv("REDIS_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getEnvDuration("CACHE_TTL", 0),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getEnvInt("SMTP_PORT", 0),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		NotifyTo:          os.Getenv("NOTIFY_TO"),
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", 0),
	}

	if err := defaults.Set(cfg); err != nil {
		log.Fatalf("Failed to apply config defaults: %v", err)
	}

	AppConfig = cfg

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
