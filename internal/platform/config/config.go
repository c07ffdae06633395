package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	JWTSecret     string
	JWTExpiryDuration time.Duration
	JWTIssuer     string

	// Refresh token config
	RefreshTokenExpiryDuration time.Duration

	// Auth cookie carrying the access token (alternative to the Authorization header)
	AuthCookieName string

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Cloudinary file storage (church logos, expense attachments)
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Transactional mail (ZeptoMail-compatible HTTP API)
	MailAPIURL    string `mapstructure:"MAIL_API_URL"`
	MailAPIKey    string `mapstructure:"MAIL_API_KEY"`
	MailFromEmail string `mapstructure:"MAIL_FROM_EMAIL"`

	// Payment gateway webhook shared secret
	PaymentWebhookSecret string `mapstructure:"PAYMENT_WEBHOOK_SECRET"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "church-mgmt-app")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("AUTH_COOKIE_NAME", "token")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("MAIL_API_URL", "")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM_EMAIL", "")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration

	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.CloudinaryCloudName = viper.GetString("CLOUDINARY_CLOUD_NAME")
	cfg.CloudinaryAPIKey = viper.GetString("CLOUDINARY_API_KEY")
	cfg.CloudinaryAPISecret = viper.GetString("CLOUDINARY_API_SECRET")
	if cfg.CloudinaryCloudName == "" {
		log.Println("Warning: CLOUDINARY_CLOUD_NAME not set. File uploads will not function.")
	}

	cfg.MailAPIURL = viper.GetString("MAIL_API_URL")
	cfg.MailAPIKey = viper.GetString("MAIL_API_KEY")
	cfg.MailFromEmail = viper.GetString("MAIL_FROM_EMAIL")
	if cfg.MailAPIURL == "" {
		log.Println("Warning: MAIL_API_URL not set. Email notifications will be skipped.")
	}

	cfg.PaymentWebhookSecret = viper.GetString("PAYMENT_WEBHOOK_SECRET")
	if cfg.PaymentWebhookSecret == "" {
		log.Println("Warning: PAYMENT_WEBHOOK_SECRET not set. Payment webhooks will be rejected.")
	}

	return cfg, nil
}
