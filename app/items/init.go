package items

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/catalog/internal/deps"
)

const (
	RepoKey    = "item_repository"
	ServiceKey = "item_service"
)

// MountPublic mounts the item routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	itemsGroup := r.Group("/items")
	itemsGroup.POST("", handler.CreateItem)
	itemsGroup.GET("", handler.ListItems)
}

// InitRepositories initializes and registers the item repository and service.
// Categories depend on the service, so this runs first.
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)
	container.RegisterService(ServiceKey, NewService(repo))
}

func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	return NewHandler(service, container.Sanitizer, container.Logger)
}
