package categories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/joefazee/catalog/models"
)

const (
	defaultSortBy   = "priority"
	defaultSortType = "asc"
	defaultLimit    = 25
)

var validSortFields = map[string]bool{
	"category_name": true,
	"priority":      true,
	"status":        true,
	"created_at":    true,
	"updated_at":    true,
}

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new category repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create creates a new category
func (r *repository) Create(ctx context.Context, category *models.Category) error {
	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

// Find returns every match ordered by priority
func (r *repository) Find(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	var categories []models.Category
	err := r.applyFilters(r.db.WithContext(ctx), filter).
		Order("priority ASC").
		Find(&categories).Error
	return categories, err
}

// FindOne returns the first match or models.ErrRecordNotFound
func (r *repository) FindOne(ctx context.Context, filter CategoryFilter) (*models.Category, error) {
	var category models.Category
	err := r.applyFilters(r.db.WithContext(ctx), filter).First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindOneAndUpdate applies the patch to the first match and returns it as stored afterwards
func (r *repository) FindOneAndUpdate(ctx context.Context, filter CategoryFilter, patch CategoryPatch) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.applyFilters(tx, filter).First(&category).Error; err != nil {
			return err
		}

		updates := patchColumns(patch)
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.Category{}).Where("id = ?", category.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", category.ID).First(&category).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// DeleteMany removes every match. An empty filter is refused.
func (r *repository) DeleteMany(ctx context.Context, filter CategoryFilter) (int64, error) {
	if filter.IsEmpty() {
		return 0, models.ErrEmptyFilter
	}
	result := r.applyFilters(r.db.WithContext(ctx), filter).Delete(&models.Category{})
	return result.RowsAffected, result.Error
}

// Paginate returns one page of matches with totals
func (r *repository) Paginate(ctx context.Context, filter CategoryFilter, opts PageOptions) (*CategoryPage, error) {
	var total int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Category{}), filter).Count(&total).Error
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(opts)
	var docs []models.Category
	err = r.applySorting(r.applyFilters(r.db.WithContext(ctx), filter), opts).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &CategoryPage{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}, nil
}

// applyFilters applies the filter clauses to the query
func (r *repository) applyFilters(query *gorm.DB, filter CategoryFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.CategoryName != nil {
		query = query.Where("category_name = ?", *filter.CategoryName)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

// applySorting whitelists the sort column, falling back to priority ascending
func (r *repository) applySorting(query *gorm.DB, opts PageOptions) *gorm.DB {
	sortBy := opts.SortBy
	if !validSortFields[sortBy] {
		sortBy = defaultSortBy
	}

	sortType := opts.SortType
	if sortType != "asc" && sortType != "desc" {
		sortType = defaultSortType
	}

	return query.Order(fmt.Sprintf("%s %s", sortBy, sortType))
}

func normalizePage(opts PageOptions) (page, limit int) {
	page, limit = opts.Page, opts.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func patchColumns(patch CategoryPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.CategoryName != nil {
		updates["category_name"] = *patch.CategoryName
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	return updates
}

// translateError maps gorm errors onto domain errors
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrCategoryNameTaken
	default:
		return err
	}
}
