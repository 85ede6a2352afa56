package app

import (
	"github.com/joefazee/catalog/app/database"
	"github.com/joefazee/catalog/internal/cache"
	"github.com/joefazee/catalog/internal/nexus"
)

// CategoriesConfig holds the listing defaults of the categories module
type CategoriesConfig struct {
	DefaultPage    int `env:"CATEGORIES_DEFAULT_PAGE" env-default:"1" validate:"min=1"`
	DefaultPerPage int `env:"CATEGORIES_DEFAULT_PER_PAGE" env-default:"25" validate:"min=1"`
	// MaxPerPage caps per_page when set; 0 leaves it uncapped
	MaxPerPage int `env:"CATEGORIES_MAX_PER_PAGE" env-default:"0" validate:"omitempty,gtefield=DefaultPerPage"`
}

type Config struct {
	DB         database.Config
	Cache      cache.Config
	Categories CategoriesConfig

	LogLevel         string   `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error fatal off"`
	MetricsNamespace string   `env:"METRICS_NAMESPACE" env-default:"catalog"`
	AppHost          string   `env:"APP_HOST" env-default:"localhost"`
	AppPort          string   `env:"APP_PORT" env-default:"8080"`
	Env              string   `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	Version          string   `env:"APP_VERSION" env-default:"1.0.0"`
	CorsOrigins      []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
