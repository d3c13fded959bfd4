package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds server-level settings. Storage, payment and push clients read
// their own variables (see infrastructure packages).
type Config struct {
	Port                    string
	JWTSecret               string
	RedisAddr               string
	RedisPassword           string
	PLNFee                  float64
	PaymentDeadline         time.Duration
	TrackingRateLimit       int
	TrackingRateWindow      time.Duration
	// TrackingReferenceLimit caps attempts per reference ID across all callers.
	TrackingReferenceLimit  int
	TrackingReferenceWindow time.Duration
	// TrustedProxies lists the addresses allowed to set X-Forwarded-For.
	// Empty means the socket address is the client IP.
	TrustedProxies          []string
	DocumentsBucket         string
	DownloadURLTTL          time.Duration
	ExpirySweepInterval     time.Duration
	FirebaseEnabled         bool
}

func Load() *Config {
	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		PLNFee:                  getFloat("PLN_FEE", 2000),
		PaymentDeadline:         time.Duration(getInt("PAYMENT_DEADLINE_DAYS", 21)) * 24 * time.Hour,
		TrackingRateLimit:       getInt("TRACKING_RATE_LIMIT", 10),
		TrackingRateWindow:      getDuration("TRACKING_RATE_WINDOW", time.Minute),
		TrackingReferenceLimit:  getInt("TRACKING_REFERENCE_LIMIT", 20),
		TrackingReferenceWindow: getDuration("TRACKING_REFERENCE_WINDOW", time.Hour),
		TrustedProxies:          getList("TRUSTED_PROXIES"),
		DocumentsBucket:         getEnv("DOCUMENTS_BUCKET", ""),
		DownloadURLTTL:          getDuration("DOWNLOAD_URL_TTL", 15*time.Minute),
		ExpirySweepInterval:     getDuration("EXPIRY_SWEEP_INTERVAL", time.Hour),
		FirebaseEnabled:         getEnv("FIREBASE_CREDENTIALS_FILE", "") != "" || getEnv("FIREBASE_CREDENTIALS_BASE64", "") != "",
	}

	if cfg.JWTSecret == "" {
		log.Printf("[config] JWT_SECRET not set; admin routes will reject every request")
	}
	if cfg.PLNFee <= 0 {
		log.Fatal("PLN_FEE must be positive")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

// getList splits a comma separated variable. Unset or blank yields nil.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
