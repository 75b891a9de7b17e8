package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Catalog  CatalogConfig
	Prefs    PrefsConfig
	Search   SearchConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type JWTConfig struct {
	Secret string
}

// CatalogConfig controls where the property catalog CSV is imported from
// when the properties table is empty. Path is a local file; when Bucket and
// Key are set the CSV is fetched from S3 instead.
type CatalogConfig struct {
	Path   string
	Bucket string
	Key    string
	Region string
}

// PrefsConfig controls the session preference sweep. TTLDays of 0 disables
// the cleanup cron.
type PrefsConfig struct {
	TTLDays int
}

type SearchConfig struct {
	ResultLimit int
}

func Load() *Config {
	godotenv.Load() // load the .env file if present

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "gharbari"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Catalog: CatalogConfig{
			Path:   getEnv("CATALOG_CSV_PATH", "data/properties.csv"),
			Bucket: getEnv("CATALOG_S3_BUCKET", ""),
			Key:    getEnv("CATALOG_S3_KEY", "catalog/properties.csv"),
			Region: getEnv("CATALOG_S3_REGION", "ap-south-1"),
		},
		Prefs: PrefsConfig{
			TTLDays: getEnvInt("PREFS_TTL_DAYS", 30),
		},
		Search: SearchConfig{
			ResultLimit: getEnvInt("SEARCH_RESULT_LIMIT", 10),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
