package config

import "os"

// Config holds the application configuration
type Config struct {
	MongoURL   string
	MongoDB    string
	ServerPort string
}

// Load reads configuration from environment variables, falling back to
// local-development defaults.
func Load() *Config {
	return &Config{
		MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "jobtrail"),
		ServerPort: getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
