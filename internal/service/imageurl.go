package service

import (
	"strings"

	"github.com/makka/storefront-api/internal/domain/model"
)

// ImageResolver turns stored image references into public URLs. References
// may be absolute URLs (kept as-is) or bucket paths (joined onto the public
// storage base URL). Empty references resolve to the placeholder.
type ImageResolver struct {
	publicBaseURL string
	bucket        string
	placeholder   string
}

// ImageResolverOptions configures an ImageResolver.
type ImageResolverOptions struct {
	PublicBaseURL string // e.g. https://storage.example.com/object/public
	Bucket        string // e.g. products
	Placeholder   string // e.g. /placeholder.svg
}

// NewImageResolver constructs an ImageResolver.
func NewImageResolver(opts ImageResolverOptions) *ImageResolver {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = "/placeholder.svg"
	}
	return &ImageResolver{
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		bucket:        strings.Trim(opts.Bucket, "/"),
		placeholder:   placeholder,
	}
}

// Resolve maps one image reference to a public URL.
func (r *ImageResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.placeholder
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if r.publicBaseURL == "" {
		return r.placeholder
	}
	parts := []string{r.publicBaseURL}
	if r.bucket != "" {
		parts = append(parts, r.bucket)
	}
	parts = append(parts, strings.TrimLeft(ref, "/"))
	return strings.Join(parts, "/")
}

// Thumbnail resolves the first image of a product, falling back to the
// placeholder when the product has none.
func (r *ImageResolver) Thumbnail(p *model.Product) string {
	if p == nil || len(p.Images) == 0 {
		return r.placeholder
	}
	return r.Resolve(p.Images[0])
}

// ResolveAll resolves every image reference of a product.
func (r *ImageResolver) ResolveAll(p *model.Product) []string {
	if p == nil || len(p.Images) == 0 {
		return nil
	}
	out := make([]string, len(p.Images))
	for i, ref := range p.Images {
		out[i] = r.Resolve(ref)
	}
	return out
}
