package items

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/catalog/app/api"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/models"
)

func setupRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(service, sanitizer.NewHTMLStripper(), logger.NewNullLogger())
	r.POST("/items", h.CreateItem)
	r.GET("/items", h.ListItems)
	return r
}

func perform(r *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreateItem(t *testing.T) {
	categoryID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateItem", mock.Anything, mock.MatchedBy(func(req *CreateItemRequest) bool {
			return req.Name == "Sneaker" && req.CategoryID == categoryID
		})).Return(&ItemResponse{ID: uuid.New(), Name: "Sneaker"}, nil)

		w := perform(setupRouter(svc), http.MethodPost, "/items",
			gin.H{"name": "<b>Sneaker</b>", "category_id": categoryID})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeResponse(t, w).Success)
		svc.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := new(MockService)
		w := perform(setupRouter(svc), http.MethodPost, "/items", gin.H{"name": "Sneaker"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.CodeValidation, decodeResponse(t, w).Error.Code)
		svc.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("Name that is only markup", func(t *testing.T) {
		svc := new(MockService)
		w := perform(setupRouter(svc), http.MethodPost, "/items",
			gin.H{"name": "<script></script>", "category_id": categoryID})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("Unknown category", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateItem", mock.Anything, mock.Anything).Return(nil, models.ErrRecordNotFound)

		w := perform(setupRouter(svc), http.MethodPost, "/items",
			gin.H{"name": "Sneaker", "category_id": categoryID})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateItem", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		w := perform(setupRouter(svc), http.MethodPost, "/items",
			gin.H{"name": "Sneaker", "category_id": categoryID})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, api.CodeInternal, decodeResponse(t, w).Error.Code)
	})
}

func TestHandler_ListItems(t *testing.T) {
	t.Run("Filter by category name", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListItems", mock.Anything, &ListItemsQuery{CategoryName: "Shoes"}).
			Return([]ItemResponse{{Name: "Sneaker"}, {Name: "Boot"}}, nil)

		w := perform(setupRouter(svc), http.MethodGet, "/items?category_name=Shoes", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid category id", func(t *testing.T) {
		svc := new(MockService)
		w := perform(setupRouter(svc), http.MethodGet, "/items?category_id=nope", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.CodeValidation, decodeResponse(t, w).Error.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListItems", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		w := perform(setupRouter(svc), http.MethodGet, "/items", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
