package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
	DotEnvLoaded    bool
}

var Env = &EnvConfig{ApplicationName: "task-list-api", LogLevel: "info"}

// Load reads the optional .env file and then the process environment.
func Load(dotEnvFiles ...string) *EnvConfig {
	loadErr := godotenv.Load(dotEnvFiles...)

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "task-list-api"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
		DotEnvLoaded:    loadErr == nil,
	}
	return Env
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
