package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCategoryNameLen = 120

// Category groups products within one store.
type Category struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	StoreID   string    `json:"store_id"   db:"store_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCategoryRequest represents parameters to create a Category.
// StoreID is supplied by the service from the caller's store-admin grant.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate validates CreateCategoryRequest.
func (r *CreateCategoryRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	return nil
}

// UpdateCategoryRequest represents parameters to rename a Category.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate validates UpdateCategoryRequest.
func (r *UpdateCategoryRequest) Validate() error {
	c := CreateCategoryRequest{Name: r.Name}
	return c.Validate()
}
