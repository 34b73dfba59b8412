package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetBool accepts the values strconv.ParseBool understands ("1", "true", "TRUE", ...).
func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return b
}

// GetDuration reads key as a whole number of seconds.
func GetDuration(config map[string]string, key string, defaultValue time.Duration) time.Duration {
	seconds := GetInt(config, key, -1)
	if seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}

// GetList splits a comma separated value, dropping blank entries.
func GetList(config map[string]string, key string) []string {
	var out []string
	for _, item := range strings.Split(GetString(config, key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
