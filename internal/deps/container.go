package deps

import (
	"time"

	"github.com/joefazee/catalog/internal/cache"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/metrics"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/models"
	"gorm.io/gorm"
)

// Settings are the tunables modules read at mount time
type Settings struct {
	DefaultPage    int
	DefaultPerPage int
	MaxPerPage     int
	CacheTTL       time.Duration
}

// Container holds all shared dependencies
type Container struct {
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Cache     cache.Cache[models.Category]
	Metrics   *metrics.Collector
	Settings  Settings

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB,
	sanitizer sanitizer.HTMLStripperer,
	logger logger.Logger,
	cache cache.Cache[models.Category],
	metrics *metrics.Collector,
	settings Settings,
) *Container {
	return &Container{
		DB:           db,
		Sanitizer:    sanitizer,
		Logger:       logger,
		Cache:        cache,
		Metrics:      metrics,
		Settings:     settings,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
