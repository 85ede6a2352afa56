package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(c *gin.Context)
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation",
			write:       func(c *gin.Context) { ValidationErrorResponse(c, "category_name is required") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidation,
			wantMessage: "Invalid request data",
		},
		{
			name:        "bad request",
			write:       func(c *gin.Context) { BadRequestResponse(c, "Invalid category ID format") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeBadRequest,
			wantMessage: "Invalid request data",
		},
		{
			name: "business rule",
			write: func(c *gin.Context) {
				BusinessRuleResponse(c, errors.New("cannot delete category containing products"))
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeBadRequest,
			wantMessage: "cannot delete category containing products",
		},
		{
			name:        "not found",
			write:       func(c *gin.Context) { NotFoundResponse(c, "Category") },
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "Category not found",
		},
		{
			name:        "conflict",
			write:       func(c *gin.Context) { ConflictResponse(c, "category name already exists") },
			wantStatus:  http.StatusConflict,
			wantCode:    CodeConflict,
			wantMessage: "category name already exists",
		},
		{
			name:        "internal",
			write:       func(c *gin.Context) { InternalErrorResponse(c, "Failed to update category") },
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternal,
			wantMessage: "Failed to update category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decode(t, w)
			assert.False(t, response.Success)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Equal(t, tt.wantMessage, response.Error.Message)
			assert.Nil(t, response.Data)
		})
	}
}

func TestSuccessResponses(t *testing.T) {
	t.Run("SuccessResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		SuccessResponse(c, http.StatusOK, "Category retrieved", map[string]string{"category_name": "Shoes"})

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode(t, w)
		assert.True(t, response.Success)
		assert.Equal(t, "Category retrieved", response.Message)
		assert.NotNil(t, response.Data)
		assert.Nil(t, response.Error)
	})

	t.Run("null data is omitted", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		UpdatedResponse(c, "Nothing to update", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"data"`)
	})

	t.Run("CreatedResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		CreatedResponse(c, "Category created", map[string]string{"id": "123"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decode(t, w).Success)
	})

	t.Run("ListResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		ListResponse(c, "Items retrieved", []string{"a", "b", "c"}, 3)

		response := decode(t, w)
		metaBytes, err := json.Marshal(response.Meta)
		require.NoError(t, err)
		var meta ListMeta
		require.NoError(t, json.Unmarshal(metaBytes, &meta))
		assert.Equal(t, 3, meta.Count)
	})

	t.Run("PaginatedResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		PaginatedResponse(c, "Categories retrieved", []string{"a", "b"}, NewPaginationMeta(1, 2, 10))

		response := decode(t, w)
		metaBytes, err := json.Marshal(response.Meta)
		require.NoError(t, err)
		var meta PaginationMeta
		require.NoError(t, json.Unmarshal(metaBytes, &meta))
		assert.Equal(t, PaginationMeta{Page: 1, PerPage: 2, Total: 10, TotalPages: 5, HasNext: true}, meta)
	})
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name                string
		page, perPage       int
		total               int64
		wantPages           int
		wantNext, wantPrevs bool
	}{
		{"empty", 1, 25, 0, 0, false, false},
		{"exact fit", 2, 5, 10, 2, false, true},
		{"partial last page", 1, 4, 9, 3, true, false},
		{"middle", 2, 4, 9, 3, true, true},
		{"zero per page", 1, 0, 9, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantNext, meta.HasNext)
			assert.Equal(t, tt.wantPrevs, meta.HasPrev)
		})
	}
}
