package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	CORSAllowedOrigins []string
	RateLimit          string
	AssistantRateLimit string

	// Listing cache
	CacheMode       string
	CacheExpiration time.Duration
	RedisURL        string
	RedisAddr       string

	// Content assistant
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
	AITimeout   time.Duration

	// Image storage
	ImageStoreDir string
	ImageBaseURL  string
	ImageFolder   string

	PosthogAPIKey string
	PosthogHost   string

	// Bootstrap admin, created at startup when no account uses the email.
	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "news-management-app")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "5-M")
	viper.SetDefault("ASSISTANT_RATE_LIMIT", "30-M")
	viper.SetDefault("CACHE_MODE", "memory")
	viper.SetDefault("CACHE_EXPIRATION", "5m")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("AI_TIMEOUT", "30s")
	viper.SetDefault("IMAGE_STORE_DIR", "./uploads")
	viper.SetDefault("IMAGE_BASE_URL", "/static")
	viper.SetDefault("IMAGE_FOLDER", "funews")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "news-management-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = jwtIssuer

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AssistantRateLimit = viper.GetString("ASSISTANT_RATE_LIMIT")

	cfg.CacheMode = strings.ToLower(strings.TrimSpace(viper.GetString("CACHE_MODE")))
	cfg.CacheExpiration = durationOr("CACHE_EXPIRATION", 5*time.Minute)
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")

	cfg.GroqAPIKey = viper.GetString("GROQ_API_KEY")
	cfg.GroqModel = viper.GetString("GROQ_MODEL")
	cfg.GroqBaseURL = strings.TrimRight(viper.GetString("GROQ_BASE_URL"), "/")
	cfg.AITimeout = durationOr("AI_TIMEOUT", 30*time.Second)
	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set. The content assistant will use local fallbacks.")
	}

	cfg.ImageStoreDir = viper.GetString("IMAGE_STORE_DIR")
	cfg.ImageBaseURL = strings.TrimRight(viper.GetString("IMAGE_BASE_URL"), "/")
	cfg.ImageFolder = viper.GetString("IMAGE_FOLDER")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogHost = viper.GetString("POSTHOG_HOST")

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	return cfg, nil
}

// durationOr parses a duration key, falling back to def on empty or invalid values.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
