package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrStoreSlugTaken = errors.New("store slug already exists")

	ErrStoreSettingsNotFound = errors.New("store settings not found")

	ErrProfileNotFound = errors.New("profile not found")

	ErrStoreAdminNotFound = errors.New("store admin not found")
	ErrStoreAdminExists   = errors.New("user is already a store admin")

	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
)
