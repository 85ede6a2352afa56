package items

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/catalog/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new item repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create creates a new item
func (r *repository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Find returns every item matching the filter, oldest first
func (r *repository) Find(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	var items []models.Item
	err := r.applyFilters(r.db.WithContext(ctx), filter).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// UpdateMany sets the given fields on every matching item and returns how many changed
func (r *repository) UpdateMany(ctx context.Context, filter ItemFilter, update ItemUpdate) (int64, error) {
	if filter.IsEmpty() {
		return 0, models.ErrEmptyFilter
	}

	updates := map[string]interface{}{}
	if update.CategoryName != nil {
		updates["category_name"] = *update.CategoryName
	}
	if len(updates) == 0 {
		return 0, nil
	}

	result := r.applyFilters(r.db.WithContext(ctx).Model(&models.Item{}), filter).Updates(updates)
	return result.RowsAffected, result.Error
}

// FindCategory loads the category an item is about to reference
func (r *repository) FindCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) applyFilters(query *gorm.DB, filter ItemFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != nil {
		query = query.Where("category_name = ?", *filter.CategoryName)
	}
	return query
}
