package util

import (
	"os"
	"strings"
)

const EnvironmentPrefix = "MAVFARES_"

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], EnvironmentPrefix) {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentVariable returns the value of a MAVFARES_ variable, or fallback when unset or empty
func GetEnvironmentVariable(name string, fallback string) string {
	value := GetEnvironmentVariables()[EnvironmentPrefix+name]
	if value == "" {
		return fallback
	}

	return value
}
