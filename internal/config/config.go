package config

import (
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	SubmissionCollection string
	Timeout              time.Duration
	AllowedOrigins       []string

	// Site identity applied by the submission assembler.
	DefaultCity string
	Region      string

	// Blob store for uploaded logos.
	AWSRegion    string
	LogoBucket   string
	MediaBaseURL string

	// Notification emails.
	EmailFromAddress  string
	StaffAlertAddress string

	LogLevel  string
	LogFormat string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:        envOrDefault("MONGO_DB", "studentjobs"),
		SubmissionCollection: envOrDefault("SUBMISSION_COLLECTION", "employer_job_submissions"),
		Timeout:              timeout,
		AllowedOrigins:       parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		DefaultCity:          envOrDefault("SITE_DEFAULT_CITY", "Groningen"),
		Region:               envOrDefault("SITE_REGION", "groningen"),
		AWSRegion:            envOrDefault("AWS_REGION", "eu-west-1"),
		LogoBucket:           strings.TrimSpace(os.Getenv("LOGO_BUCKET")),
		MediaBaseURL:         strings.TrimSpace(os.Getenv("MEDIA_BASE_URL")),
		EmailFromAddress:     strings.TrimSpace(os.Getenv("EMAIL_FROM_ADDRESS")),
		StaffAlertAddress:    strings.TrimSpace(os.Getenv("STAFF_ALERT_ADDRESS")),
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		LogFormat:            envOrDefault("LOG_FORMAT", "json"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
