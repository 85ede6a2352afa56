package categories

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/catalog/app/items"
	"github.com/joefazee/catalog/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockRepository) FindOne(ctx context.Context, filter CategoryFilter) (*models.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockRepository) FindOneAndUpdate(ctx context.Context, filter CategoryFilter, patch CategoryPatch) (*models.Category, error) {
	args := m.Called(ctx, filter, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockRepository) DeleteMany(ctx context.Context, filter CategoryFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Paginate(ctx context.Context, filter CategoryFilter, opts PageOptions) (*CategoryPage, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryPage), args.Error(1)
}

type MockItems struct {
	mock.Mock
}

func (m *MockItems) Find(ctx context.Context, filter items.ItemFilter) ([]models.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItems) UpdateMany(ctx context.Context, filter items.ItemFilter, update items.ItemUpdate) (int64, error) {
	args := m.Called(ctx, filter, update)
	return args.Get(0).(int64), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DeleteResponse), args.Error(1)
}

func (m *MockService) GetList(ctx context.Context, query *ListCategoriesQuery) (*ListResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResult), args.Error(1)
}

func (m *MockService) GetCategory(ctx context.Context, name string) (*CategoryResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}

func (m *MockService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}
