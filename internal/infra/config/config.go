package config

import (
	"fmt"
	"log"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию приложения.
type AppConfig struct {
	AppEnv    string `envconfig:"APP_ENV" default:"dev"`
	Host      string `envconfig:"HOST" default:"0.0.0.0"`
	Port      int    `envconfig:"PORT" default:"8080"`
	SecretKey string `envconfig:"SECRET_KEY" default:"change-me"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`

	DBPath string `envconfig:"DATABASE_PATH" default:"feedback.db"`

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
		File  string `envconfig:"LOG_FILE"`
	} `envconfig:""`
}

// Addr возвращает адрес для net.Listen.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
