package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	Maps     *Mapsconfig
	App      *Appconfig
	Srv      *Serviceconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}
type RabbitMqconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}
type Mapsconfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}
type Appconfig struct {
	PublicJwtSecret string `yaml:"public_jwt_secret"`
}
type Serviceconfig struct {
	TrekServicePort string `yaml:"trek_service"`
}
type Loggerconfig struct {
	Level string `yaml:"level"`
}

func New() (*Config, error) {
	// .env is optional, plain environment variables win
	_ = godotenv.Load()

	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			fmt.Printf("using default key %v\n", def)
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			fmt.Printf("using default key %v\n", def)
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("using default key %v\n", def)
			return def
		}
		return val
	}

	cnf := &Config{
		DB: &DBconfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "trektango_user"),
			Password: getEnv("DB_PASSWORD", "trektango_pass"),
			Database: getEnv("DB_NAME", "trektango_db"),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Maps: &Mapsconfig{
			APIKey:  getEnv("MAPS_API_KEY", ""),
			BaseURL: getEnv("MAPS_BASE_URL", ""),
		},
		App: &Appconfig{
			PublicJwtSecret: getEnv("PUBLIC_JWT_SECRET", "secret"),
		},
		Srv: &Serviceconfig{
			TrekServicePort: getEnv("TREK_SERVICE_PORT", "3000"),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	return cnf, nil
}
