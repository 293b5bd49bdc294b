package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Pricing knobs. Rates are fractions, not percentages.
	FeeRate      float64 `mapstructure:"FEE_RATE"`
	CashbackRate float64 `mapstructure:"CASHBACK_RATE"`

	// Countdown windows, in minutes.
	HoldMinutes       int `mapstructure:"HOLD_MINUTES"`
	HoldExtendMinutes int `mapstructure:"HOLD_EXTEND_MINUTES"`
	QRMinutes         int `mapstructure:"QR_MINUTES"`

	// Idle session lifetime before the sweeper tears a session down.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Simulated settlement behavior.
	SettlementDelayMs     int     `mapstructure:"SETTLEMENT_DELAY_MS"`
	SettlementFailureRate float64 `mapstructure:"SETTLEMENT_FAILURE_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
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
	viper.SetDefault("FEE_RATE", 0.10)
	viper.SetDefault("CASHBACK_RATE", 0.05)
	viper.SetDefault("HOLD_MINUTES", 20)
	viper.SetDefault("HOLD_EXTEND_MINUTES", 10)
	viper.SetDefault("QR_MINUTES", 5)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SETTLEMENT_DELAY_MS", 1500)
	viper.SetDefault("SETTLEMENT_FAILURE_RATE", 0.0)

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
