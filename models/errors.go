package models

import "errors"

var (
	ErrInvalidCategoryID     = errors.New("invalid category ID")
	ErrInvalidCategoryName   = errors.New("invalid category name")
	ErrInvalidCategoryImage  = errors.New("invalid category image")
	ErrInvalidCategoryStatus = errors.New("invalid category status")

	ErrCategoryNameTaken    = errors.New("category name already exists")
	ErrCategoryHasItems     = errors.New("cannot delete category containing products")
	ErrPriorityAlreadyFirst = errors.New("category priority already number one")

	ErrInvalidItemName = errors.New("invalid item name")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrEmptyFilter                     = errors.New("refusing to run a bulk operation without a filter")

	ErrInvalidUUID    = errors.New("invalid UUID")
	ErrRecordNotFound = errors.New("record not found")
)
