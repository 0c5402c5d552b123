package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/labelwise/backend/internal/domain"
)

// ScoreServiceConfig holds configuration for the score service
type ScoreServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ScoreService handles product lookup and health scoring with caching
type ScoreService struct {
	cache     domain.CacheRepository
	catalog   domain.ProductCatalog
	additives domain.AdditiveCatalog
	provider  domain.ProductProvider
	cacheTTL  time.Duration
	debug     bool
}

// NewScoreService creates a new score service with dependencies
func NewScoreService(
	cache domain.CacheRepository,
	catalog domain.ProductCatalog,
	additives domain.AdditiveCatalog,
	provider domain.ProductProvider,
	config ScoreServiceConfig,
) *ScoreService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ScoreService{
		cache:     cache,
		catalog:   catalog,
		additives: additives,
		provider:  provider,
		cacheTTL:  cacheTTL,
		debug:     config.EnableDebugLogging,
	}
}

// Lookup resolves a barcode to a scored product.
// Flow: check cache -> local catalog -> Open Food Facts fallback -> score.
// An unresolvable barcode is a normal StatusUnknown result, not an error;
// the only caller-visible failure is a missing barcode.
func (s *ScoreService) Lookup(ctx context.Context, gtin string) (*domain.LookupResult, error) {
	gtin = strings.TrimSpace(gtin)
	if gtin == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := "score:" + gtin
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			if s.debug {
				log.Printf("[SCORE] cache hit for %q", gtin)
			}
			return cached, nil
		}
	}

	product := s.resolveProduct(ctx, gtin)
	if product == nil {
		return &domain.LookupResult{Status: domain.StatusUnknown}, nil
	}

	records, err := s.additives.Additives()
	if err != nil {
		// Missing KB degrades scoring, never fails the request.
		log.Printf("[SCORE] additive catalog unavailable, scoring without it: %v", err)
	}

	score := ComputeHealthScore(product, records)
	result := &domain.LookupResult{
		Status:  score.Status,
		Score:   score,
		Product: product,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			log.Printf("[SCORE] failed to cache result for %q: %v", gtin, err)
		}
	}

	return result, nil
}

// resolveProduct checks the local catalog first and falls back to the remote
// provider. Every failure along the way degrades to a nil product so the
// lookup completes from whatever data is available.
func (s *ScoreService) resolveProduct(ctx context.Context, gtin string) *domain.Product {
	product, err := s.catalog.FindByGTIN(gtin)
	if err == nil && product != nil {
		if s.debug {
			log.Printf("[SCORE] local catalog hit for %q", gtin)
		}
		return product
	}
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		log.Printf("[SCORE] local catalog error for %q: %v", gtin, err)
	}

	if s.provider == nil {
		return nil
	}

	product, err = s.provider.FetchProduct(ctx, gtin)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			log.Printf("[SCORE] provider error for %q: %v", gtin, err)
		}
		return nil
	}
	return product
}

// ListAdditives returns the full knowledge base as-is. A load failure
// degrades to an empty list.
func (s *ScoreService) ListAdditives() []domain.AdditiveRecord {
	records, err := s.additives.Additives()
	if err != nil {
		log.Printf("[SCORE] additive catalog unavailable: %v", err)
		return []domain.AdditiveRecord{}
	}
	if records == nil {
		records = []domain.AdditiveRecord{}
	}
	return records
}
