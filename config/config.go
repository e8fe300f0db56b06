package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers understood by the kv store factory.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	SessionTTLHours   int    `mapstructure:"SESSION_TTL_HOURS"`

	// Persistence.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Allow-listed admin ids, used when seeding admin_config.
	AdminManicure string `mapstructure:"ADMIN_MANICURE"`
	AdminOther    string `mapstructure:"ADMIN_OTHER"`
	AdminAll      string `mapstructure:"ADMIN_ALL"`

	SeedMockData     bool `mapstructure:"SEED_MOCK_DATA"`
	AuditQueue       bool `mapstructure:"AUDIT_QUEUE"`
	BannerTTLSeconds int  `mapstructure:"BANNER_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers default values for every key.
func SetDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SESSION_TTL_HOURS", 24*30)
	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "salonadmin")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("ADMIN_MANICURE", "1373071419")
	viper.SetDefault("ADMIN_OTHER", "1094720117")
	viper.SetDefault("ADMIN_ALL", "130208292")
	viper.SetDefault("SEED_MOCK_DATA", false)
	viper.SetDefault("AUDIT_QUEUE", false)
	viper.SetDefault("BANNER_TTL_SECONDS", 3)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL is the lifetime of the signed session cookie.
func SessionTTL() time.Duration {
	if AppConfig.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}

// BannerTTL is how long a transient banner stays visible.
func BannerTTL() time.Duration {
	if AppConfig.BannerTTLSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(AppConfig.BannerTTLSeconds) * time.Second
}
