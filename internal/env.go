package internal

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names consulted for defaults.
const (
	EnvLoginID    = "LOGIN_ID"
	EnvLoginPW    = "LOGIN_PW"
	EnvAPIKey     = "GPT_API_KEY"
	EnvConfigPath = "SCRIPTMASTER_CONFIG"
)

// DefaultConfigPath is used when neither the flag nor the environment sets
// a path.
const DefaultConfigPath = "config.json"

// LoadEnvironment reads the process-wide defaults, loading a .env file
// first when one exists.
func LoadEnvironment() Environment {
	if err := godotenv.Load(); err != nil {
		LogDebug("no .env file loaded: %v", err)
	}
	return Environment{
		LoginID: os.Getenv(EnvLoginID),
		LoginPW: os.Getenv(EnvLoginPW),
		APIKey:  os.Getenv(EnvAPIKey),
	}
}

// ResolveConfigPath picks the backing file path: explicit flag value first,
// then the environment, then the default.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath
}
