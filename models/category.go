package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// priorities travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// CategoryStatus is the publication state of a category
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "ACTIVE"
	CategoryStatusInactive CategoryStatus = "INACTIVE"
)

// IsValid reports whether the status is one of the known values
func (s CategoryStatus) IsValid() bool {
	return s == CategoryStatusActive || s == CategoryStatusInactive
}

// Category represents a product category of the catalog.
// Priority is a sparse ordering key: lower values come first.
type Category struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_category_name" json:"category_name"`
	Image        string          `gorm:"type:text;not null" json:"image"`
	Status       CategoryStatus  `gorm:"type:varchar(20);not null;index:idx_categories_status" json:"status"`
	Priority     decimal.Decimal `gorm:"type:numeric;not null;index:idx_categories_priority" json:"priority"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Category model
func (*Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns an ID and the default status
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = CategoryStatusActive
	}
	return nil
}

// Validate performs validation on the category model
func (c *Category) Validate() error {
	if strings.TrimSpace(c.CategoryName) == "" {
		return ErrInvalidCategoryName
	}
	if strings.TrimSpace(c.Image) == "" {
		return ErrInvalidCategoryImage
	}
	if c.Status != "" && !c.Status.IsValid() {
		return ErrInvalidCategoryStatus
	}
	return nil
}

// IsActive reports whether the category takes part in priority ordering
func (c *Category) IsActive() bool {
	return c.Status == CategoryStatusActive
}

// Snapshot returns the denormalized copy items carry of this category
func (c *Category) Snapshot() CategorySnapshot {
	return CategorySnapshot{ID: c.ID, Name: c.CategoryName}
}
