package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from
// config.yaml when present, overridden by environment variables.
type Config struct {
	Port             int
	DBPath           string
	GoldPricePerGram float64
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIBaseURL    string
	OpenAITimeout    time.Duration
	SessionTTL       time.Duration
	SweepInterval    time.Duration
}

func Load() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("database.path", "kuber_gold.db")
	viper.SetDefault("gold.price_per_gram", 6500.0)
	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.timeout", 15*time.Second)
	viper.SetDefault("session.ttl", 30*time.Minute)
	viper.SetDefault("session.sweep_interval", time.Minute)

	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("gold.price_per_gram", "GOLD_PRICE_PER_GRAM")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("database.path", "DATABASE_PATH")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file found, using defaults")
	}

	return Config{
		Port:             viper.GetInt("server.port"),
		DBPath:           viper.GetString("database.path"),
		GoldPricePerGram: viper.GetFloat64("gold.price_per_gram"),
		OpenAIAPIKey:     viper.GetString("openai.api_key"),
		OpenAIModel:      viper.GetString("openai.model"),
		OpenAIBaseURL:    viper.GetString("openai.base_url"),
		OpenAITimeout:    viper.GetDuration("openai.timeout"),
		SessionTTL:       viper.GetDuration("session.ttl"),
		SweepInterval:    viper.GetDuration("session.sweep_interval"),
	}
}
