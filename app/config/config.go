package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB   *sql.DB
	SMTP SMTPConfig
	S3   S3Config
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// S3Config points exports at an S3-compatible bucket. Enabled is false when
// no endpoint is configured; exports then stay download-only.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
	Enabled   bool
}

var AppConfig *Config

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Init loads .env if present, connects to PostgreSQL and reads the mail and
// export settings. Fatal on an unreachable database: nothing in the app works
// without it.
func Init() {
	_ = godotenv.Load()

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=10",
		getenv("PG_HOST", "localhost"),
		getenv("PG_PORT", "5432"),
		getenv("PG_USER", "postgres"),
		getenv("PG_PASSWORD", ""),
		getenv("PG_DB", "church_register"),
		getenv("PG_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	AppConfig = &Config{
		DB: db,
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		},
		S3: S3Config{
			Endpoint:  endpoint,
			AccessKey: getenv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("S3_SECRET_KEY", "minioadmin"),
			Region:    getenv("S3_REGION", "us-east-1"),
			Bucket:    getenv("S3_BUCKET", "exports"),
			UseSSL:    getenv("S3_USE_SSL", "false") == "true",
			Enabled:   endpoint != "",
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
