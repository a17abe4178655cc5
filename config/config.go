package config

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application. It is loaded once at
// startup and passed where needed; no credentials live in source.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	SessionSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	RazorpayKey    string
	RazorpaySecret string

	OCRAPIURL string
	OCRAPIKey string
	OCRModel  string

	Port string
	Env  string
}

// LoadConfig loads configuration from the environment. A missing .env file
// is not an error; deployments set real environment variables instead.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),

		OCRAPIURL: os.Getenv("OCR_API_URL"),
		OCRAPIKey: os.Getenv("OCR_API_KEY"),
		OCRModel:  os.Getenv("OCR_MODEL"),

		Port: os.Getenv("PORT"),
		Env:  os.Getenv("ENV"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.OCRModel == "" {
		config.OCRModel = "gpt-4o"
	}

	return config, nil
}

// IsProduction reports whether the app runs with production settings. Demo
// conveniences (OTP echoed back in responses) are disabled in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
