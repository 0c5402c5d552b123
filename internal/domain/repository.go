package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching lookup results
type CacheRepository interface {
	Get(ctx context.Context, key string) (*LookupResult, error)
	Set(ctx context.Context, key string, value *LookupResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ProductCatalog is the local, read-only product catalog. FindByGTIN returns
// ErrProductNotFound for an unknown barcode; any other error means the
// catalog itself could not be read.
type ProductCatalog interface {
	FindByGTIN(gtin string) (*Product, error)
}

// AdditiveCatalog supplies the additive knowledge base. A load failure
// returns an empty slice alongside the error; callers degrade rather than
// fail the request.
type AdditiveCatalog interface {
	Additives() ([]AdditiveRecord, error)
}

// ProductProvider is the remote fallback data source, queried when the local
// catalog misses.
type ProductProvider interface {
	FetchProduct(ctx context.Context, gtin string) (*Product, error)
}

// SubmissionStore persists user-submitted product corrections.
type SubmissionStore interface {
	Append(payload map[string]any) (*Submission, error)
	List() []Submission
}
