package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from YAML. A missing file is tolerated so
// packages can be imported by tests; defaults then come from SetDefault calls.
func init() {
	if err := Reload(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// FilePath is PROPERTIES_FILE_PATH or configs/application.yml.
func FilePath() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return "configs/application.yml"
}

// Reload reads FilePath again so that placeholders pick up environment
// variables set after start-up, such as those loaded from a .env file.
func Reload() error {
	path := FilePath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return Init(path)
}

// Init reads the given YAML file and resolves ${ENV:default} placeholders in
// every string value. Calling it again replaces the previous values.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return err
	}

	for _, key := range reader.AllKeys() {
		value := reader.Get(key)
		if raw, ok := value.(string); ok {
			value = resolveEnvVariables(raw)
		}
		properties.Set(key, value)
	}
	return nil
}

// resolveEnvVariables replaces each ${NAME:default} occurrence with the
// environment value, the default, or an empty string.
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

// SetDefault registers a fallback used when the key is absent from the file.
func SetDefault(key string, value any) {
	properties.SetDefault(key, value)
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetInt32(key string) int32 {
	return properties.GetInt32(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
