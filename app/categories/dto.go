package categories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/internal/validator"
	"github.com/joefazee/catalog/models"
)

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	CategoryName string                `json:"category_name" binding:"required,max=100"`
	Image        string                `json:"image" binding:"required"`
	Status       models.CategoryStatus `json:"status,omitempty"`
}

// SanitizeAndValidate strips markup and checks the fields binding tags cannot
func (r *CreateCategoryRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	r.CategoryName = s.StripHTML(r.CategoryName)
	r.Image = strings.TrimSpace(r.Image)
	r.Status = models.CategoryStatus(strings.ToUpper(s.StripHTML(string(r.Status))))

	v.Check(validator.NotBlank(r.CategoryName), "category_name", "category_name must not be blank")
	v.Check(validator.MaxRunes(r.CategoryName, 100), "category_name", "category_name must not exceed 100 characters")
	v.Check(validator.IsURL(r.Image), "image", "image must be a valid URL")
	v.Check(r.Status == "" || r.Status.IsValid(), "status", "status must be either ACTIVE or INACTIVE")
}

// Position is a 1-based slot in the active ordering. Any JSON number is
// accepted; fractions are truncated toward zero.
type Position int

func (p *Position) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("priority must be a number: %w", err)
	}
	*p = Position(d.IntPart())
	return nil
}

// UpdateCategoryRequest represents a partial update. Priority is the
// 1-based position the category should move to among active categories.
type UpdateCategoryRequest struct {
	CategoryName *string                `json:"category_name,omitempty"`
	Image        *string                `json:"image,omitempty"`
	Status       *models.CategoryStatus `json:"status,omitempty"`
	Priority     *Position              `json:"priority,omitempty" swaggertype:"number"`
}

func (r *UpdateCategoryRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	if r.CategoryName != nil {
		name := s.StripHTML(*r.CategoryName)
		r.CategoryName = &name
		v.Check(validator.NotBlank(name), "category_name", "category_name must not be blank")
		v.Check(validator.MaxRunes(name, 100), "category_name", "category_name must not exceed 100 characters")
	}
	if r.Image != nil {
		image := strings.TrimSpace(*r.Image)
		r.Image = &image
		v.Check(validator.IsURL(image), "image", "image must be a valid URL")
	}
	if r.Status != nil {
		status := models.CategoryStatus(strings.ToUpper(s.StripHTML(string(*r.Status))))
		r.Status = &status
		v.Check(status.IsValid(), "status", "status must be either ACTIVE or INACTIVE")
	}
}

// ListCategoriesQuery holds the listing parameters. When Priority is set the
// listing returns the single category at that 0-based position of the page.
type ListCategoriesQuery struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	SortBy   string `form:"sort_by"`
	SortType string `form:"sort_type"`
	Status   string `form:"status"`
	Priority *int   `form:"priority"`
}

func (q *ListCategoriesQuery) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	q.SortBy = s.StripHTML(q.SortBy)
	q.SortType = strings.ToLower(s.StripHTML(q.SortType))
	q.Status = strings.ToUpper(s.StripHTML(q.Status))

	v.Check(q.Page >= 0, "page", "page must not be negative")
	v.Check(q.PerPage >= 0, "per_page", "per_page must not be negative")
	v.Check(validator.In(q.Status, "", string(models.CategoryStatusActive), string(models.CategoryStatusInactive)),
		"status", "status must be either ACTIVE or INACTIVE")
}

// CategoryResponse represents the response for category data
type CategoryResponse struct {
	ID           uuid.UUID             `json:"id"`
	CategoryName string                `json:"category_name"`
	Image        string                `json:"image"`
	Status       models.CategoryStatus `json:"status"`
	Priority     decimal.Decimal       `json:"priority" swaggertype:"number"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CategoryListResponse is one page of categories
type CategoryListResponse struct {
	Docs        []CategoryResponse `json:"docs"`
	TotalDocs   int64              `json:"total_docs"`
	Limit       int                `json:"limit"`
	Page        int                `json:"page"`
	TotalPages  int                `json:"total_pages"`
	HasPrevPage bool               `json:"has_prev_page"`
	HasNextPage bool               `json:"has_next_page"`
}

// ListResult is either a page or, in priority mode, the selected category
// (which may be nil when the page is empty).
type ListResult struct {
	Page     *CategoryListResponse
	Selected *CategoryResponse
}

// DeleteResponse is returned by a successful delete
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ToCategoryResponse converts a models.Category to CategoryResponse
func ToCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           category.ID,
		CategoryName: category.CategoryName,
		Image:        category.Image,
		Status:       category.Status,
		Priority:     category.Priority,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// ToCategoryResponseList converts a slice of models.Category to CategoryResponse
func ToCategoryResponseList(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses
}

func toCategoryListResponse(page *CategoryPage) *CategoryListResponse {
	return &CategoryListResponse{
		Docs:        ToCategoryResponseList(page.Docs),
		TotalDocs:   page.TotalDocs,
		Limit:       page.Limit,
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		HasPrevPage: page.HasPrevPage,
		HasNextPage: page.HasNextPage,
	}
}
