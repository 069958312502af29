package config

import "os"

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	AdminAPIKey       string
	ServerPort        string
	TickInterval      string
	ContestWindowDays string
	StoreTimeout      string
}

func Load() *Config {
	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "contests"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminAPIKey:       getEnv("ADMIN_API_KEY", "admin-api-key-change-me"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		TickInterval:      getEnv("TICK_INTERVAL", "60"),
		ContestWindowDays: getEnv("CONTEST_WINDOW_DAYS", "7"),
		StoreTimeout:      getEnv("STORE_TIMEOUT", "5"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
