package items

import (
	"context"

	"github.com/joefazee/catalog/models"
)

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new item service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// Find returns the items matching filter
func (s *service) Find(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	return s.repo.Find(ctx, filter)
}

// UpdateMany applies update to every item matching filter
func (s *service) UpdateMany(ctx context.Context, filter ItemFilter, update ItemUpdate) (int64, error) {
	return s.repo.UpdateMany(ctx, filter, update)
}

// CreateItem stores a new item carrying a snapshot of its category
func (s *service) CreateItem(ctx context.Context, req *CreateItemRequest) (*ItemResponse, error) {
	category, err := s.repo.FindCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:     req.Name,
		Category: category.Snapshot(),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

func (s *service) ListItems(ctx context.Context, query *ListItemsQuery) ([]ItemResponse, error) {
	items, err := s.repo.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	return ToItemResponseList(items), nil
}
