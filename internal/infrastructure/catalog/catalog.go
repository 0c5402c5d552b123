// Package catalog loads the static local product catalog and the additive
// knowledge base from JSON files. Both loaders read per call and return the
// empty value alongside any error so callers can degrade instead of failing
// the request.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/labelwise/backend/internal/domain"
)

// ProductFile is a file-backed product catalog
type ProductFile struct {
	path string
}

// NewProductFile creates a catalog backed by the JSON file at path
func NewProductFile(path string) *ProductFile {
	return &ProductFile{path: path}
}

// FindByGTIN looks up a product by exact barcode match. Unknown barcodes
// yield ErrProductNotFound; a read or parse failure is returned as-is.
func (f *ProductFile) FindByGTIN(gtin string) (*domain.Product, error) {
	products, err := f.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].GTIN == gtin {
			product := products[i]
			if product.Per == 0 {
				product.Per = 100
			}
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *ProductFile) load() ([]domain.Product, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read product catalog: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse product catalog: %w", err)
	}
	return products, nil
}

// AdditiveFile is a file-backed additive knowledge base
type AdditiveFile struct {
	path string
}

// NewAdditiveFile creates a knowledge base backed by the JSON file at path
func NewAdditiveFile(path string) *AdditiveFile {
	return &AdditiveFile{path: path}
}

// Additives returns every knowledge-base record in file order. On failure
// it returns an empty slice plus the error; scoring proceeds without the KB.
func (f *AdditiveFile) Additives() ([]domain.AdditiveRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read additive catalog: %w", err)
	}

	var records []domain.AdditiveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse additive catalog: %w", err)
	}
	return records, nil
}
