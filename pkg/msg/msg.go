package msg

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

func init() {
	path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		path = "configs/messages.yml"
	}
	Init(path)
}

// Init loads the message catalog from a YAML file. A missing catalog is not
// fatal: GetMessage then falls back to the key, which keeps the API usable
// and test packages importable from any directory.
func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Fail to read messages from %s: %v", filepath, err)
		return
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	flatten("", v.AllSettings(), messages)
}

// flatten reads the YAML tree recursively into dotted keys.
func flatten(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			flatten(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the catalog entry for key with {0}, {1}, ... placeholders
// replaced by the given arguments.
func GetMessage(key string, args ...interface{}) string {
	m, exists := messages[key]
	if !exists {
		return key
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		m = strings.ReplaceAll(m, placeholder, fmt.Sprintf("%v", arg))
	}

	return m
}
