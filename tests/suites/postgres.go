package suites

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/joefazee/catalog/app/database"
	"github.com/joefazee/catalog/models"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// catalogTables lists the tables a test may write to, children first.
// Items point at categories, so they are emptied before them.
var catalogTables = []string{"items", "categories"}

// startCatalogDB boots a disposable postgres and returns it with its DSN.
func startCatalogDB(ctx context.Context) (testcontainers.Container, string, error) {
	const port = "5432/tcp"
	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://catalog:catalog@%s:%s/catalog_test?sslmode=disable", host, port.Port())
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17.5-alpine3.21",
			ExposedPorts: []string{port},
			Cmd:          []string{"postgres", "-c", "fsync=off"},
			Env: map[string]string{
				"POSTGRES_DB":       "catalog_test",
				"POSTGRES_USER":     "catalog",
				"POSTGRES_PASSWORD": "catalog",
			},
			WaitingFor: wait.ForSQL(port, "postgres", dsn).
				WithStartupTimeout(30 * time.Second).
				WithQuery("SELECT 1"),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, "", fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return container, "", fmt.Errorf("failed to get container port: %w", err)
	}
	return container, dsn(host, mapped), nil
}

// migrationsDir walks up from the working directory to the module root.
func migrationsDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations"), nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return "", errors.New("module root not found")
		}
		wd = parent
	}
}

func migrateUp(dsn string) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// RepositoryTestSuite runs repository tests against a migrated postgres
// holding the catalog schema. Every test starts with empty tables.
type RepositoryTestSuite struct {
	suite.Suite
	Container testcontainers.Container
	DB        *gorm.DB
}

func (suite *RepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("Skipping postgres repository tests in short mode")
	}
	ctx := context.Background()

	container, dsn, err := startCatalogDB(ctx)
	suite.Container = container
	suite.Require().NoError(err)
	suite.Require().NoError(migrateUp(dsn))

	suite.DB, err = database.Open(postgres.Open(dsn), false)
	suite.Require().NoError(err)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.DB != nil {
		if sqlDB, err := suite.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if suite.Container != nil {
		_ = suite.Container.Terminate(context.Background())
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.Reset()
}

// Reset empties the catalog tables, items before categories.
func (suite *RepositoryTestSuite) Reset() {
	for _, table := range catalogTables {
		suite.Require().NoError(suite.DB.Exec(fmt.Sprintf("DELETE FROM %q", table)).Error)
	}
}

// SeedCategory inserts a category straight through gorm, bypassing any repository.
func (suite *RepositoryTestSuite) SeedCategory(name string, priority int64, status models.CategoryStatus) *models.Category {
	category := &models.Category{
		CategoryName: name,
		Image:        "https://cdn.example.com/" + name + ".png",
		Status:       status,
		Priority:     decimal.NewFromInt(priority),
	}
	suite.Require().NoError(suite.DB.Create(category).Error)
	return category
}

// SeedItem inserts an item carrying the category's current snapshot.
func (suite *RepositoryTestSuite) SeedItem(category *models.Category, name string) *models.Item {
	item := &models.Item{Name: name, Category: category.Snapshot()}
	suite.Require().NoError(suite.DB.Create(item).Error)
	return item
}

// Count returns the number of rows in one of the catalog tables.
func (suite *RepositoryTestSuite) Count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.DB.Table(table).Count(&n).Error)
	return n
}
