package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a dotenv file into the process environment. Variables already
// set in the environment win over file values.
func Load(filename string) error {
	return godotenv.Load(filename)
}

func GetString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

func GetInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		panic("env: invalid int value for " + key)
	}

	return intValue
}

func GetBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		panic("env: invalid bool value for " + key)
	}

	return boolValue
}
