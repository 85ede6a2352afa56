package items

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/catalog/models"
)

// ItemFilter is a conjunction of optional clauses
type ItemFilter struct {
	ID           *uuid.UUID
	CategoryID   *uuid.UUID
	CategoryName *string
}

// IsEmpty reports whether the filter would match every item
func (f ItemFilter) IsEmpty() bool {
	return f.ID == nil && f.CategoryID == nil && f.CategoryName == nil
}

// ItemUpdate lists the fields a bulk update may set
type ItemUpdate struct {
	CategoryName *string
}

// Repository defines the interface for item data access
type Repository interface {
	Create(ctx context.Context, item *models.Item) error
	Find(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	UpdateMany(ctx context.Context, filter ItemFilter, update ItemUpdate) (int64, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

// Service defines the interface for item business logic
type Service interface {
	Find(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	UpdateMany(ctx context.Context, filter ItemFilter, update ItemUpdate) (int64, error)
	CreateItem(ctx context.Context, req *CreateItemRequest) (*ItemResponse, error)
	ListItems(ctx context.Context, query *ListItemsQuery) ([]ItemResponse, error)
}
