package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	CMSBaseURL  string // Headless CMS content API base URL
	CMSAPIKey   string // Read-only content API token
	CMSSyncCron string // Cron spec for catalog re-sync

	StripeSecretKey       string
	StripePriceIndividual string // Price ID for the individual package
	StripePriceSeat       string // Price ID for one staff seat
	StripeReturnURL       string // Browser return URL after checkout

	SendgridAPIKey string
	EmailSender    string

	// When false the progress endpoints read/write the reduced shape
	// without last_lesson_id (pre-migration deployments).
	ProgressResumeLesson bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CMSBaseURL:  getEnv("CMS_BASE_URL", "http://localhost:1337"),
		CMSAPIKey:   getEnv("CMS_API_KEY", ""),
		CMSSyncCron: getEnv("CMS_SYNC_CRON", "0 */6 * * *"),

		StripeSecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
		StripePriceIndividual: getEnv("STRIPE_PRICE_INDIVIDUAL", ""),
		StripePriceSeat:       getEnv("STRIPE_PRICE_SEAT", ""),
		StripeReturnURL:       getEnv("STRIPE_RETURN_URL", "http://localhost:3000/payment/return"),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@cultura.example"),

		ProgressResumeLesson: getEnvBool("PROGRESS_RESUME_LESSON", true),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set. Payment routes will fail.")
	}
	if AppConfig.CMSAPIKey == "" {
		log.Println("Warning: CMS_API_KEY is not set. Catalog sync may be rejected by the CMS.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
