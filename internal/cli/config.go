package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	User      string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("BATEPAPO_SERVER", "http://localhost:5000"),
		User:      os.Getenv("BATEPAPO_USER"),
		Output:    "text",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
