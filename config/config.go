package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	// Object storage (Aliyun OSS) for rendered certificates
	OSSEndpoint   string
	OSSAccessKey  string
	OSSSecretKey  string
	OSSBucket     string
	OSSPublicBase string // optional CDN/custom-domain base for public URLs
	OSSPrefix     string // optional key prefix inside the bucket

	// Certificate numbering. When AllocatorURL is set, numbers are fetched
	// from the external allocator service instead of the local sequence.
	AllocatorURL string

	// Notification email
	SendgridKey string
	EmailSender string

	// Orphaned-artifact sweep (storage objects without a certificate row)
	SweepEnabled bool
	SweepDelete  bool
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
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		OSSEndpoint:   getEnv("OSS_ENDPOINT", ""),
		OSSAccessKey:  getEnv("OSS_ACCESS_KEY", ""),
		OSSSecretKey:  getEnv("OSS_SECRET_KEY", ""),
		OSSBucket:     getEnv("OSS_BUCKET", "certificates"),
		OSSPublicBase: getEnv("OSS_PUBLIC_BASE", ""),
		OSSPrefix:     getEnv("OSS_PREFIX", ""),

		AllocatorURL: getEnv("CERT_ALLOCATOR_URL", ""),

		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "certificados@serene.edu"),

		SweepEnabled: getEnvBool("CERT_SWEEP_ENABLED", false),
		SweepDelete:  getEnvBool("CERT_SWEEP_DELETE", false),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.OSSEndpoint == "" {
		log.Println("Warning: OSS_ENDPOINT not set. Certificate storage is unavailable.")
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

// getEnvBool retrieves an environment variable as a boolean or returns the default value
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
