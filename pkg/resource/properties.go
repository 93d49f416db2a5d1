package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var v = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads application properties from YAML
func init() {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = "configs/application.yml"
	}
	Init(path)
}

// Init loads properties from the given file. A missing file leaves the
// store empty; callers relying on configuration will see zero values.
func Init(filepath string) {
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Fail to read properties from %s: %v", filepath, err)
		return
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	if err := v.MergeConfigMap(resolved); err != nil {
		log.Fatalf("Error to load application properties: %v", err)
	}
}

// parsePropertiesMap reads the YAML tree recursively, resolving env placeholders
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch val := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(val)
		case map[string]interface{}:
			parsePropertiesMap(fullKey, val, result)
		}
	}
}

// resolveEnvVariable resolves ${ENV_NAME:default} patterns against the
// environment; plain values pass through unchanged.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

func Get(key string) any {
	return v.Get(key)
}

func GetString(key string) string {
	return v.GetString(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetInt64(key string) int64 {
	return v.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return v.GetStringSlice(key)
}
