package off

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labelwise/backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

// Client handles communication with the Open Food Facts product API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Open Food Facts client. Open Food Facts asks
// product queries to stay under 100 req/min, so the limiter enforces
// 100/60 requests per second with a small burst.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limiter := rate.NewLimiter(rate.Limit(100.0/60.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables request/response debug logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}

	return resp, nil
}

// FetchProduct retrieves a product by barcode and maps it into the domain
// shape. A barcode unknown to Open Food Facts yields ErrProductNotFound;
// transient failures are retried with backoff before surfacing an error.
func (c *Client) FetchProduct(ctx context.Context, gtin string) (*domain.Product, error) {
	if c.debug {
		log.Printf("[OFF] FetchProduct called for barcode: %q", gtin)
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(gtin))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[OFF] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		// Open Food Facts reports unknown barcodes both as HTTP 404 and as
		// a status-0 envelope; treat them the same.
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[OFF] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var envelope productEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if envelope.Status != 1 || envelope.Product == nil {
			if c.debug {
				log.Printf("[OFF] no product for barcode: %q", gtin)
			}
			return nil, domain.ErrProductNotFound
		}

		return MapToProduct(gtin, envelope.Product), nil
	}

	if c.debug {
		log.Printf("[OFF] all retries failed for barcode: %q", gtin)
	}
	return nil, lastErr
}
