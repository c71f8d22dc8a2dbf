package config

import (
	"log"
	"os"
)

// Config holds everything the site reads from the environment.
// Development fallbacks keep a fresh checkout runnable without a .env file.
type Config struct {
	Port string

	ProfilePath   string
	UploadDir     string
	UploadURLBase string

	AdminUsername string
	AdminPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	ContactEmail string
}

func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		ProfilePath:   getenv("PROFILE_PATH", "data/profile.json"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		UploadURLBase: getenv("UPLOAD_URL_BASE", "/uploads"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ContactEmail:  os.Getenv("TO_EMAIL"),
	}

	// Default credentials for development (remove in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
