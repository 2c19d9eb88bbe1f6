package config

import "strings"

// StorageConfig describes the external object storage where product images live.
// Only URL resolution happens in this service; uploads go directly to the bucket.
type StorageConfig struct {
	// PublicBaseURL is the public root of the storage service,
	// e.g. "https://cdn.example.com/storage/v1/object/public".
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""`

	// ProductsBucket is the bucket name holding product images.
	ProductsBucket string `env:"PRODUCTS_BUCKET" envDefault:"products"`

	// PlaceholderPath is served when a product has no usable image.
	PlaceholderPath string `env:"PLACEHOLDER_PATH" envDefault:"/placeholder.svg"`
}

// Sanitize normalizes storage configuration values.
func (s *StorageConfig) Sanitize() {
	s.PublicBaseURL = strings.TrimRight(strings.TrimSpace(s.PublicBaseURL), "/")
	s.ProductsBucket = strings.Trim(strings.TrimSpace(s.ProductsBucket), "/")
	if s.PlaceholderPath == "" {
		s.PlaceholderPath = "/placeholder.svg"
	}
}
