//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const maxStoreNameLen = 255

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store represents a single storefront on the platform.
type Store struct {
	ID         string    `json:"id"          db:"id"`
	Name       string    `json:"name"        db:"name"`
	Slug       string    `json:"slug"        db:"slug"`
	Address    *string   `json:"address"     db:"address"`
	LogoPath   *string   `json:"logo_path"   db:"logo_path"`
	BannerPath *string   `json:"banner_path" db:"banner_path"`
	ThemeColor *string   `json:"theme_color" db:"theme_color"`
	IsActive   bool      `json:"is_active"   db:"is_active"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// StoreSettings holds per-store payment and shipping switches.
// A default row is created alongside the store.
type StoreSettings struct {
	StoreID                string    `json:"store_id"                 db:"store_id"`
	PaymentCODEnabled      bool      `json:"payment_cod_enabled"      db:"payment_cod_enabled"`
	PaymentQRISEnabled     bool      `json:"payment_qris_enabled"     db:"payment_qris_enabled"`
	ShippingCourierEnabled bool      `json:"shipping_courier_enabled" db:"shipping_courier_enabled"`
	ShippingPickupEnabled  bool      `json:"shipping_pickup_enabled"  db:"shipping_pickup_enabled"`
	ShippingFeeFlat        int64     `json:"shipping_fee_flat"        db:"shipping_fee_flat"`
	ShippingFeeType        string    `json:"shipping_fee_type"        db:"shipping_fee_type"`
	PickupAddress          *string   `json:"pickup_address"           db:"pickup_address"`
	UpdatedAt              time.Time `json:"updated_at"               db:"updated_at"`
}

// CreateStoreRequest represents parameters to create a Store.
type CreateStoreRequest struct {
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Address *string `json:"address,omitempty"`
}

// Validate validates CreateStoreRequest.
func (r *CreateStoreRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxStoreNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	if r.Slug == "" {
		return errors.New("slug is required")
	}
	if !slugPattern.MatchString(r.Slug) {
		return errors.New("slug must contain only lowercase letters, digits, and hyphens")
	}
	return nil
}

// UpdateStoreRequest represents parameters to update a Store.
type UpdateStoreRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	LogoPath   *string `json:"logo_path,omitempty"`
	BannerPath *string `json:"banner_path,omitempty"`
	ThemeColor *string `json:"theme_color,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateStoreRequest.
func (r *UpdateStoreRequest) HasUpdates() bool {
	return r.Name != nil || r.Address != nil || r.LogoPath != nil ||
		r.BannerPath != nil || r.ThemeColor != nil || r.IsActive != nil
}

// Validate validates UpdateStoreRequest, ensuring at least one field is set.
func (r *UpdateStoreRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxStoreNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	return nil
}

// UpdateStoreSettingsRequest represents parameters to update StoreSettings.
type UpdateStoreSettingsRequest struct {
	PaymentCODEnabled      *bool   `json:"payment_cod_enabled,omitempty"`
	PaymentQRISEnabled     *bool   `json:"payment_qris_enabled,omitempty"`
	ShippingCourierEnabled *bool   `json:"shipping_courier_enabled,omitempty"`
	ShippingPickupEnabled  *bool   `json:"shipping_pickup_enabled,omitempty"`
	ShippingFeeFlat        *int64  `json:"shipping_fee_flat,omitempty"`
	ShippingFeeType        *string `json:"shipping_fee_type,omitempty"`
	PickupAddress          *string `json:"pickup_address,omitempty"`
}

// Validate validates UpdateStoreSettingsRequest.
func (r *UpdateStoreSettingsRequest) Validate() error {
	if r.PaymentCODEnabled == nil && r.PaymentQRISEnabled == nil &&
		r.ShippingCourierEnabled == nil && r.ShippingPickupEnabled == nil &&
		r.ShippingFeeFlat == nil && r.ShippingFeeType == nil && r.PickupAddress == nil {
		return errors.New("at least one field must be updated")
	}
	if r.ShippingFeeFlat != nil && *r.ShippingFeeFlat < 0 {
		return errors.New("shipping_fee_flat cannot be negative")
	}
	if r.ShippingFeeType != nil {
		switch strings.ToUpper(strings.TrimSpace(*r.ShippingFeeType)) {
		case "FLAT", "FREE":
			*r.ShippingFeeType = strings.ToUpper(strings.TrimSpace(*r.ShippingFeeType))
		default:
			return errors.New("shipping_fee_type must be FLAT or FREE")
		}
	}
	return nil
}
