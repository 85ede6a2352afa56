package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/catalog/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
	basePath  string
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container, basePath: "/api/v1"}
}

// Public routes under the versioned API prefix
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	group := engine.Group(m.basePath)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFuncs ...MountFunc) *RouteGroup {
	for _, mountFunc := range mountFuncs {
		mountFunc(rg.group, rg.container)
	}
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	subGroup := rg.group.Group(path)
	return &RouteGroup{group: subGroup, container: rg.container}
}

// Use attaches middleware to every route mounted afterwards
func (rg *RouteGroup) Use(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
