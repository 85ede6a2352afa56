package categories

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/catalog/app/items"
	"github.com/joefazee/catalog/internal/cache"
	"github.com/joefazee/catalog/internal/deps"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/metrics"
	"github.com/joefazee/catalog/internal/router"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/models"
	"github.com/joefazee/catalog/tests/suites"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	container := deps.NewContainer(suites.NewSQLiteDB(t),
		sanitizer.NewHTMLStripper(),
		logger.NewNullLogger(),
		cache.Noop[models.Category]{},
		metrics.NewCollector("catalog_init_test"),
		deps.Settings{DefaultPage: 1, DefaultPerPage: 25, MaxPerPage: 100})

	items.InitRepositories(container)
	InitRepositories(container)

	engine := gin.New()
	router.NewMounter(container).Public(engine).Mount(items.MountPublic, MountPublic)
	return engine
}

func dataOf(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Data
}

func TestMountPublic_RenameFlow(t *testing.T) {
	engine := newTestEngine(t)

	w := perform(engine, http.MethodPost, "/api/v1/categories",
		gin.H{"category_name": "Shoes", "image": "https://cdn.example.com/shoes.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := dataOf(t, w.Body.Bytes())["id"].(string)

	w = perform(engine, http.MethodPost, "/api/v1/items", gin.H{"name": "Sneaker", "category_id": categoryID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = perform(engine, http.MethodDelete, "/api/v1/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(engine, http.MethodPatch, "/api/v1/categories/"+categoryID, gin.H{"category_name": "Footwear"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Footwear", dataOf(t, w.Body.Bytes())["category_name"])

	w = perform(engine, http.MethodGet, "/api/v1/items?category_name=Footwear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = perform(engine, http.MethodGet, "/api/v1/categories/name/Footwear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, categoryID, dataOf(t, w.Body.Bytes())["id"])

	w = perform(engine, http.MethodGet, "/api/v1/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(engine, http.MethodGet, "/api/v1/categories?per_page=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
