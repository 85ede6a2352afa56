package categories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/joefazee/catalog/app/items"
	"github.com/joefazee/catalog/internal/cache"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/metrics"
	"github.com/joefazee/catalog/models"
)

const nameCachePrefix = "category:name:"

// Options tunes a category service. Zero values fall back to sensible defaults.
type Options struct {
	Cache          cache.Cache[models.Category]
	CacheTTL       time.Duration
	Logger         logger.Logger
	Metrics        *metrics.Collector
	DefaultPage    int
	DefaultPerPage int
	// MaxPerPage caps per_page when positive. Zero leaves it uncapped.
	MaxPerPage int
}

// service implements the Service interface
type service struct {
	repo    Repository
	items   ItemCollaborator
	cache   cache.Cache[models.Category]
	ttl     time.Duration
	logger  logger.Logger
	metrics *metrics.Collector
	clock   *priorityClock

	defaultPage    int
	defaultPerPage int
	maxPerPage     int
}

// NewService creates a new category service
func NewService(repo Repository, items ItemCollaborator, opts Options) Service {
	s := &service{
		repo:           repo,
		items:          items,
		cache:          opts.Cache,
		ttl:            opts.CacheTTL,
		logger:         opts.Logger,
		metrics:        opts.Metrics,
		clock:          defaultClock,
		defaultPage:    opts.DefaultPage,
		defaultPerPage: opts.DefaultPerPage,
		maxPerPage:     opts.MaxPerPage,
	}
	if s.cache == nil {
		s.cache = cache.Noop[models.Category]{}
	}
	if s.logger == nil {
		s.logger = logger.NewNullLogger()
	}
	if s.defaultPage <= 0 {
		s.defaultPage = 1
	}
	if s.defaultPerPage <= 0 {
		s.defaultPerPage = defaultLimit
	}
	return s
}

// Create stores a new category at the end of the ordering
func (s *service) Create(ctx context.Context, req *CreateCategoryRequest) (resp *CategoryResponse, err error) {
	defer func() { s.metrics.RecordOperation("create", err) }()

	category := &models.Category{
		CategoryName: req.CategoryName,
		Image:        req.Image,
		Status:       req.Status,
		Priority:     s.clock.Next(),
	}
	if category.Status == "" {
		category.Status = models.CategoryStatusActive
	}
	if err = category.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete removes a category that no item references
func (s *service) Delete(ctx context.Context, id uuid.UUID) (resp *DeleteResponse, err error) {
	defer func() { s.metrics.RecordOperation("delete", err) }()

	linked, err := s.items.Find(ctx, items.ItemFilter{CategoryID: &id})
	if err != nil {
		return nil, fmt.Errorf("failed to check category items: %w", err)
	}
	if len(linked) > 0 {
		return nil, models.ErrCategoryHasItems
	}

	existing, err := s.repo.FindOne(ctx, CategoryFilter{ID: &id})
	if err != nil && !errors.Is(err, models.ErrRecordNotFound) {
		return nil, err
	}

	if _, err = s.repo.DeleteMany(ctx, CategoryFilter{ID: &id}); err != nil {
		return nil, err
	}

	if existing != nil {
		s.invalidate(ctx, existing.CategoryName)
	}

	return &DeleteResponse{Success: true}, nil
}

// GetList returns a page of categories, or a single one when a priority index is given
func (s *service) GetList(ctx context.Context, query *ListCategoriesQuery) (result *ListResult, err error) {
	defer func() { s.metrics.RecordOperation("list", err) }()

	var filter CategoryFilter
	if query.Status != "" {
		status := models.CategoryStatus(query.Status)
		filter.Status = &status
	}

	page, err := s.repo.Paginate(ctx, filter, s.pageOptions(query))
	if err != nil {
		return nil, err
	}

	if query.Priority != nil {
		selected := pickRanked(page.Docs, *query.Priority)
		if selected == nil {
			return &ListResult{}, nil
		}
		return &ListResult{Selected: ToCategoryResponse(selected)}, nil
	}

	return &ListResult{Page: toCategoryListResponse(page)}, nil
}

// GetCategory looks a category up by name. An unknown name is not an error.
func (s *service) GetCategory(ctx context.Context, name string) (resp *CategoryResponse, err error) {
	defer func() { s.metrics.RecordOperation("get_by_name", err) }()

	key := nameCachePrefix + name
	if cached, cerr := s.cache.Get(ctx, key); cerr == nil {
		s.metrics.RecordCacheLookup(true)
		return ToCategoryResponse(&cached), nil
	} else if !errors.Is(cerr, cache.ErrCacheMiss) {
		s.logger.Warn("category cache read failed", logger.Fields{"key": key, "error": cerr.Error()})
	}
	s.metrics.RecordCacheLookup(false)

	category, err := s.repo.FindOne(ctx, CategoryFilter{CategoryName: &name})
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if cerr := s.cache.Set(ctx, key, *category, s.ttl); cerr != nil {
		s.logger.Warn("category cache write failed", logger.Fields{"key": key, "error": cerr.Error()})
	}

	return ToCategoryResponse(category), nil
}

// GetCategoryByID returns the category or models.ErrRecordNotFound
func (s *service) GetCategoryByID(ctx context.Context, id uuid.UUID) (resp *CategoryResponse, err error) {
	defer func() { s.metrics.RecordOperation("get_by_id", err) }()

	category, err := s.repo.FindOne(ctx, CategoryFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Update applies a partial update. Only requests carrying a name or a
// priority reach the store; anything else yields nil without error.
func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (resp *CategoryResponse, err error) {
	defer func() { s.metrics.RecordOperation("update", err) }()

	if req.CategoryName == nil && req.Priority == nil {
		return nil, nil
	}

	patch := CategoryPatch{
		CategoryName: req.CategoryName,
		Image:        req.Image,
		Status:       req.Status,
	}

	if req.Priority != nil {
		priority, perr := s.reprioritize(ctx, int(*req.Priority))
		if perr != nil {
			return nil, perr
		}
		patch.Priority = &priority
	}

	if req.CategoryName != nil {
		return s.rename(ctx, id, patch)
	}

	updated, err := s.repo.FindOneAndUpdate(ctx, CategoryFilter{ID: &id}, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.CategoryName)

	return ToCategoryResponse(updated), nil
}

// reprioritize turns a 1-based position into a priority among the active categories
func (s *service) reprioritize(ctx context.Context, position int) (decimal.Decimal, error) {
	active := models.CategoryStatusActive
	list, err := s.repo.Find(ctx, CategoryFilter{Status: &active})
	if err != nil {
		return decimal.Zero, err
	}
	if len(list) <= 1 {
		return decimal.Zero, models.ErrPriorityAlreadyFirst
	}
	return Reinsert(position-1, list), nil
}

// rename writes the patch and moves every item carrying the old name to the
// new one. Both writes run concurrently and neither is rolled back if the
// other fails.
func (s *service) rename(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*CategoryResponse, error) {
	current, err := s.repo.FindOne(ctx, CategoryFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	oldName := current.CategoryName
	newName := *patch.CategoryName

	var (
		updated  *models.Category
		cascaded int64
	)

	// either write may have landed even when the other fails
	defer s.invalidate(ctx, oldName, newName)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var uerr error
		updated, uerr = s.repo.FindOneAndUpdate(gctx, CategoryFilter{ID: &id}, patch)
		return uerr
	})
	g.Go(func() error {
		var cerr error
		cascaded, cerr = s.items.UpdateMany(gctx,
			items.ItemFilter{CategoryName: &oldName},
			items.ItemUpdate{CategoryName: &newName})
		if cerr != nil {
			return fmt.Errorf("failed to rename category items: %w", cerr)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error(err, logger.Fields{
			"category_id": id.String(),
			"old_name":    oldName,
			"new_name":    newName,
		})
		return nil, err
	}

	s.metrics.RecordCascade(cascaded)
	s.logger.Info("category renamed", logger.Fields{
		"category_id":   id.String(),
		"old_name":      oldName,
		"new_name":      newName,
		"items_renamed": cascaded,
	})

	return ToCategoryResponse(updated), nil
}

func (s *service) pageOptions(query *ListCategoriesQuery) PageOptions {
	page := query.Page
	if page <= 0 {
		page = s.defaultPage
	}
	limit := query.PerPage
	if limit <= 0 {
		limit = s.defaultPerPage
	}
	if s.maxPerPage > 0 && limit > s.maxPerPage {
		limit = s.maxPerPage
	}
	return PageOptions{
		SortBy:   query.SortBy,
		SortType: query.SortType,
		Limit:    limit,
		Page:     page,
	}
}

func (s *service) invalidate(ctx context.Context, names ...string) {
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = nameCachePrefix + name
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("category cache invalidation failed", logger.Fields{"keys": keys, "error": err.Error()})
	}
}
