package categories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/catalog/app/items"
	"github.com/joefazee/catalog/models"
)

// CategoryFilter is a conjunction of optional clauses
type CategoryFilter struct {
	ID           *uuid.UUID
	CategoryName *string
	Status       *models.CategoryStatus
}

// IsEmpty reports whether the filter would match every category
func (f CategoryFilter) IsEmpty() bool {
	return f.ID == nil && f.CategoryName == nil && f.Status == nil
}

// CategoryPatch carries only the fields to change
type CategoryPatch struct {
	CategoryName *string
	Image        *string
	Status       *models.CategoryStatus
	Priority     *decimal.Decimal
}

// PageOptions controls sorting and paging of a listing
type PageOptions struct {
	SortBy   string
	SortType string
	Limit    int
	Page     int
}

// CategoryPage is one page of a listing together with its position in the whole result
type CategoryPage struct {
	Docs        []models.Category
	TotalDocs   int64
	Limit       int
	Page        int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
}

// Repository defines the interface for category data access
type Repository interface {
	Create(ctx context.Context, category *models.Category) error
	Find(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	FindOne(ctx context.Context, filter CategoryFilter) (*models.Category, error)
	FindOneAndUpdate(ctx context.Context, filter CategoryFilter, patch CategoryPatch) (*models.Category, error)
	DeleteMany(ctx context.Context, filter CategoryFilter) (int64, error)
	Paginate(ctx context.Context, filter CategoryFilter, opts PageOptions) (*CategoryPage, error)
}

// ItemCollaborator is the part of the items module categories rely on
type ItemCollaborator interface {
	Find(ctx context.Context, filter items.ItemFilter) ([]models.Item, error)
	UpdateMany(ctx context.Context, filter items.ItemFilter, update items.ItemUpdate) (int64, error)
}

// Service defines the interface for category business logic
type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResponse, error)
	GetList(ctx context.Context, query *ListCategoriesQuery) (*ListResult, error)
	GetCategory(ctx context.Context, name string) (*CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error)
}
