package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	GeocoderURL   string `mapstructure:"GEOCODER_URL"`
	GeocoderToken string `mapstructure:"GEOCODER_TOKEN"`
}

func Load() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	// POSTGRES_URL stays empty by default: the catalog then boots from
	// the built-in fixture data instead of a database.
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("GEOCODER_URL", "")
	viper.SetDefault("GEOCODER_TOKEN", "")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
