package config

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	Environment    string `mapstructure:"ENVIRONMENT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	LogFile        string `mapstructure:"LOG_FILE"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	AnalyticsAPIURL string `mapstructure:"ANALYTICS_API_URL"`

	PostgresDSN       string        `mapstructure:"POSTGRES_DSN"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBLogMode         bool          `mapstructure:"DB_LOG_MODE"`
}

// IsProduction gates the Secure attribute on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func GetConfig() *Config {
	once.Do(func() {
		viper.SetDefault("PORT", "4000")
		viper.SetDefault("ENVIRONMENT", "development")
		viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
		viper.SetDefault("LOG_FILE", "logs/api.log")
		viper.SetDefault("ADMIN_USERNAME", "admin")
		viper.SetDefault("ANALYTICS_API_URL", "http://localhost:8000")
		viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
		viper.SetDefault("DB_MAX_OPEN_CONNS", 100)
		viper.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
		viper.SetDefault("DB_LOG_MODE", true)

		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalf("Fatal error config file: %s \n", err)
			} else {
				log.Println("[WARNING]: .env config file not found, relying on defaults and system ENV variables.")
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			log.Fatalf("Error unmarshalling config, %s", err)
		}

		lifetimeStr := viper.GetString("DB_CONN_MAX_LIFETIME")
		parsedLifetime, err := time.ParseDuration(lifetimeStr)
		if err != nil {
			log.Printf(
				"Warning: Invalid DB_CONN_MAX_LIFETIME format '%s', using default 1h. Error: %v\n",
				lifetimeStr,
				err,
			)
			parsedLifetime = time.Hour
		}
		config.DBConnMaxLifetime = parsedLifetime
	})

	return config
}
