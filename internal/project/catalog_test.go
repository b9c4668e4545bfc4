package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/InsuCut/internal/model"
)

func TestDefaultCatalogPath(t *testing.T) {
	path, err := DefaultCatalogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "catalog.json" {
		t.Errorf("expected filename catalog.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".insucut" {
		t.Errorf("expected parent dir .insucut, got %s", dir)
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_catalog.json")

	price := 42.0
	cat := model.Catalog{
		Materials: []model.Material{
			{
				Name: "Test Wool",
				Samples: []model.MaterialSample{
					{Temperature: 20, Conductivity: 0.035},
					{Temperature: 200, Conductivity: 0.06},
				},
				Variants: []model.StockVariant{
					{Name: "Test Wool 1200x600x50", Thickness: 50, Length: 1200, Width: 600, Price: &price},
				},
			},
		},
	}

	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("catalog file was not created")
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(loaded.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(loaded.Materials))
	}
	m := loaded.Materials[0]
	if m.Name != "Test Wool" {
		t.Errorf("expected material name 'Test Wool', got %q", m.Name)
	}
	if len(m.Samples) != 2 {
		t.Errorf("expected 2 samples, got %d", len(m.Samples))
	}
	if len(m.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(m.Variants))
	}
	if m.Variants[0].Price == nil || *m.Variants[0].Price != 42.0 {
		t.Errorf("expected price 42.0, got %v", m.Variants[0].Price)
	}
}

func TestLoadCatalogCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	// Should have created defaults
	if len(cat.Materials) == 0 {
		t.Error("expected default materials, got none")
	}

	// Should have written the file
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default catalog file to be created")
	}
}

func TestImportCatalog(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Catalog{
		Materials: []model.Material{
			{Name: "Rock Wool"},
		},
	}
	imported := model.Catalog{
		Materials: []model.Material{
			{Name: "Rock Wool"}, // duplicate, should be skipped
			{Name: "Aerogel Blanket"},
		},
	}

	importPath := filepath.Join(tmpDir, "import.json")
	data, _ := json.MarshalIndent(imported, "", "  ")
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportCatalog(importPath, existing)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}

	if len(merged.Materials) != 2 {
		t.Fatalf("expected 2 materials after merge, got %d", len(merged.Materials))
	}
	if merged.Materials[0].Name != "Rock Wool" {
		t.Errorf("expected first material 'Rock Wool', got %q", merged.Materials[0].Name)
	}
	if merged.Materials[1].Name != "Aerogel Blanket" {
		t.Errorf("expected second material 'Aerogel Blanket', got %q", merged.Materials[1].Name)
	}
}

func TestExportCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.json")

	cat := model.DefaultCatalog()
	if err := ExportCatalog(path, cat); err != nil {
		t.Fatalf("ExportCatalog failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}

	var loaded model.Catalog
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal exported catalog: %v", err)
	}

	if len(loaded.Materials) != len(cat.Materials) {
		t.Errorf("expected %d materials, got %d", len(cat.Materials), len(loaded.Materials))
	}
}
