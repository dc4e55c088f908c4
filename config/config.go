package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatContextDB   int    `mapstructure:"REDIS_CHAT_CONTEXT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Third-party keys.
	StripeKey    string `mapstructure:"STRIPE_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Admin auth.
	JWTSecret  string `mapstructure:"JWT_SECRET"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`
	AdminKey   string `mapstructure:"ADMIN_KEY"`

	// SMTP for booking confirmations and pickup reminders.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort string `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	// Agent tuning.
	QATimeoutSeconds  int `mapstructure:"QA_TIMEOUT_SECONDS"`
	ChatContextTTLMin int `mapstructure:"CHAT_CONTEXT_TTL_MIN"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tropicab")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("QA_TIMEOUT_SECONDS", 8)
	viper.SetDefault("CHAT_CONTEXT_TTL_MIN", 30)
	viper.SetDefault("SMTP_PORT", "587")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
