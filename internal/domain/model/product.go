package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxProductNameLen = 255

// Product is a sellable item belonging to one store.
// Images holds either absolute URLs or storage bucket paths; resolution to a
// public URL is a presentation concern (see service.ImageResolver).
type Product struct {
	ID          string    `json:"id"           db:"id"`
	StoreID     string    `json:"store_id"     db:"store_id"`
	CategoryID  *string   `json:"category_id"  db:"category_id"`
	Name        string    `json:"name"         db:"name"`
	Description *string   `json:"description"  db:"description"`
	Price       int64     `json:"price"        db:"price"`
	Images      []string  `json:"images"       db:"images"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// CreateProductRequest represents parameters to create a Product.
type CreateProductRequest struct {
	CategoryID  *string  `json:"category_id,omitempty"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Images      []string `json:"images,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// Validate validates CreateProductRequest.
func (r *CreateProductRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProductNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if r.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// UpdateProductRequest represents parameters to update a Product.
type UpdateProductRequest struct {
	CategoryID  *string   `json:"category_id,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsAvailable *bool     `json:"is_available,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateProductRequest.
func (r *UpdateProductRequest) HasUpdates() bool {
	return r.CategoryID != nil || r.Name != nil || r.Description != nil ||
		r.Price != nil || r.Images != nil || r.IsAvailable != nil
}

// Validate validates UpdateProductRequest.
func (r *UpdateProductRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxProductNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// ProductsListOptions controls paging and filtering for listing products.
type ProductsListOptions struct {
	StoreID       string
	CategoryID    *string
	OnlyAvailable bool
	Limit         int
	Offset        int
}
