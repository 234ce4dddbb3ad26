package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	PublicBaseURL   string
	MongoURI        string
	MongoDB         string
	DBPath          string
	DBSeedPath      string
	AllowedOrigins  []string
	FrontendURL     string
	RedisAddr       string
	JWTIssuer       string
	JWTSigningKey   string
	SessionTTL      time.Duration
	RateLimitPerMin int

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
}

// Load returns application config populated from environment variables with
// sensible defaults. A local .env file is honored when present.
func Load() App {
	_ = godotenv.Load()

	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("PORT", "3001"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", ""),
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDB:         getEnv("MONGODB_DB", "pergunu_db"),
		DBPath:          getEnv("DB_PATH", "db.json"),
		DBSeedPath:      getEnv("DB_SEED_PATH", ""),
		AllowedOrigins:  csvEnv("ALLOWED_ORIGINS"),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		JWTIssuer:       getEnv("JWT_ISSUER", "pergunu-portal"),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		SessionTTL:      durationEnv("SESSION_TTL", 24*time.Hour),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "pergunu"),
	}
}

// Production reports whether the server runs in production mode.
func (a App) Production() bool {
	return a.Env == "production" || a.Env == "prod"
}

// CloudinaryConfigured reports whether all Cloudinary credentials are set.
func (a App) CloudinaryConfigured() bool {
	return a.CloudinaryCloudName != "" && a.CloudinaryAPIKey != "" && a.CloudinaryAPISecret != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func csvEnv(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
