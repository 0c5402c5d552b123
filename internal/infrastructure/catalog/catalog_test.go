package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/labelwise/backend/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestProductFile_FindByGTIN(t *testing.T) {
	const products = `[
		{"gtin": "111", "name": "Plain Oats", "category": "Breakfast", "per": 100,
		 "nutrition": {"sugar": 1.1, "fiber": 10}},
		{"gtin": "222", "name": "Cola Zero", "category": "Soft Drink"}
	]`

	t.Run("finds a product by exact barcode", func(t *testing.T) {
		catalog := NewProductFile(writeFile(t, "products.json", products))

		product, err := catalog.FindByGTIN("111")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Name != "Plain Oats" {
			t.Errorf("Name = %q, want Plain Oats", product.Name)
		}
		if product.Nutrition.Sugar == nil || *product.Nutrition.Sugar != 1.1 {
			t.Errorf("Sugar = %v, want 1.1", product.Nutrition.Sugar)
		}
	})

	t.Run("defaults the serving basis to 100", func(t *testing.T) {
		catalog := NewProductFile(writeFile(t, "products.json", products))

		product, err := catalog.FindByGTIN("222")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Per != 100 {
			t.Errorf("Per = %v, want 100 default", product.Per)
		}
	})

	t.Run("returns ErrProductNotFound for an unknown barcode", func(t *testing.T) {
		catalog := NewProductFile(writeFile(t, "products.json", products))

		_, err := catalog.FindByGTIN("999")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("surfaces a missing file as an error, not a panic", func(t *testing.T) {
		catalog := NewProductFile(filepath.Join(t.TempDir(), "nope.json"))

		_, err := catalog.FindByGTIN("111")
		if err == nil || errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want a read error distinct from not-found", err)
		}
	})

	t.Run("surfaces malformed JSON as an error", func(t *testing.T) {
		catalog := NewProductFile(writeFile(t, "products.json", `{broken`))

		_, err := catalog.FindByGTIN("111")
		if err == nil || errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want a parse error distinct from not-found", err)
		}
	})
}

func TestAdditiveFile_Additives(t *testing.T) {
	const additives = `[
		{"name": "Tartrazine", "aliases": ["e102"], "level": "red", "severity": 12, "short": "Synthetic colour"},
		{"name": "Pectin", "aliases": ["e440"], "level": "green"}
	]`

	t.Run("returns records in file order", func(t *testing.T) {
		kb := NewAdditiveFile(writeFile(t, "additives.json", additives))

		records, err := kb.Additives()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("len = %d, want 2", len(records))
		}
		if records[0].Name != "Tartrazine" || records[0].Severity != 12 {
			t.Errorf("records[0] = %+v", records[0])
		}
		if records[1].Level != domain.LevelGreen || records[1].Severity != 0 {
			t.Errorf("records[1] = %+v", records[1])
		}
	})

	t.Run("returns empty plus the error on a missing file", func(t *testing.T) {
		kb := NewAdditiveFile(filepath.Join(t.TempDir(), "nope.json"))

		records, err := kb.Additives()
		if err == nil {
			t.Error("expected an error for a missing file")
		}
		if len(records) != 0 {
			t.Errorf("records = %v, want empty", records)
		}
	})

	t.Run("returns empty plus the error on malformed JSON", func(t *testing.T) {
		kb := NewAdditiveFile(writeFile(t, "additives.json", `not json`))

		records, err := kb.Additives()
		if err == nil {
			t.Error("expected an error for malformed JSON")
		}
		if len(records) != 0 {
			t.Errorf("records = %v, want empty", records)
		}
	})
}
