package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/catalog/app/items"
	"github.com/joefazee/catalog/internal/deps"
)

const (
	RepoKey    = "category_repository"
	ServiceKey = "category_service"
)

// MountPublic mounts the category routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.POST("", handler.CreateCategory)
	categoriesGroup.GET("", handler.GetCategories)
	categoriesGroup.GET("/name/:categoryName", handler.GetCategoryByName)
	categoriesGroup.GET("/:categoryId", handler.GetCategoryByID)
	categoriesGroup.PATCH("/:categoryId", handler.UpdateCategory)
	categoriesGroup.DELETE("/:categoryId", handler.DeleteCategory)
}

// InitRepositories initializes and registers the category repository and service.
// items.InitRepositories must have run already.
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	itemService := container.GetService(items.ServiceKey).(items.Service)
	container.RegisterService(ServiceKey, NewService(repo, itemService, Options{
		Cache:          container.Cache,
		CacheTTL:       container.Settings.CacheTTL,
		Logger:         container.Logger,
		Metrics:        container.Metrics,
		DefaultPage:    container.Settings.DefaultPage,
		DefaultPerPage: container.Settings.DefaultPerPage,
		MaxPerPage:     container.Settings.MaxPerPage,
	}))
}

func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	return NewHandler(service, container.Sanitizer, container.Logger)
}
