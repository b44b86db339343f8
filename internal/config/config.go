package config

import "github.com/spf13/viper"

// Config holds the runtime settings of the service, read from
// environment variables with sensible defaults for local development.
type Config struct {
	AppPort     string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
}

func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.AutomaticEnv()

	return Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RedisAddr:   viper.GetString("REDIS_ADDR"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
	}
}
