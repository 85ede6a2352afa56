package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/internal/validator"
	"github.com/joefazee/catalog/models"
)

// CreateItemRequest represents the request to create an item
type CreateItemRequest struct {
	Name       string    `json:"name" binding:"required,max=255"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// SanitizeAndValidate cleans the name and checks what binding tags cannot
func (r *CreateItemRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	r.Name = s.StripHTML(r.Name)

	v.Check(validator.NotBlank(r.Name), "name", "name must not be blank")
	v.Check(r.CategoryID != uuid.Nil, "category_id", "category_id is required")
}

// ListItemsQuery holds the optional filters of the item listing
type ListItemsQuery struct {
	CategoryID   string `form:"category_id"`
	CategoryName string `form:"category_name"`
}

func (q *ListItemsQuery) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	q.CategoryID = s.StripHTML(q.CategoryID)
	q.CategoryName = s.StripHTML(q.CategoryName)

	v.Check(q.CategoryID == "" || validator.IsUUID(q.CategoryID), "category_id", "category_id must be a valid UUID")
}

// Filter converts the query into a repository filter
func (q *ListItemsQuery) Filter() ItemFilter {
	var f ItemFilter
	if id, err := uuid.Parse(q.CategoryID); err == nil {
		f.CategoryID = &id
	}
	if q.CategoryName != "" {
		name := q.CategoryName
		f.CategoryName = &name
	}
	return f
}

// CategoryReference is the category copy embedded in an item
type CategoryReference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemResponse represents the response for item data
type ItemResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Category  CategoryReference `json:"category"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func ToItemResponse(item *models.Item) *ItemResponse {
	return &ItemResponse{
		ID:   item.ID,
		Name: item.Name,
		Category: CategoryReference{
			ID:   item.Category.ID,
			Name: item.Category.Name,
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func ToItemResponseList(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}
	return responses
}
