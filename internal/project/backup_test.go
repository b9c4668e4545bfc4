package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/InsuCut/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultKerfWidth = 6.0
	cat := model.DefaultCatalog()
	tpl := model.NewTemplateStore()
	tpl.Add(model.NewProjectTemplate("Furnace", "Two-layer furnace box", buildTestProject()))

	if err := ExportAllData(path, cfg, cat, tpl); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultKerfWidth != 6.0 {
		t.Errorf("expected DefaultKerfWidth=6.0, got %f", backup.Config.DefaultKerfWidth)
	}
	if len(backup.Catalog.Materials) != len(cat.Materials) {
		t.Errorf("expected %d materials, got %d", len(cat.Materials), len(backup.Catalog.Materials))
	}
	if len(backup.Templates.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(backup.Templates.Templates))
	}
	if backup.Templates.Templates[0].Name != "Furnace" {
		t.Errorf("expected template 'Furnace', got %q", backup.Templates.Templates[0].Name)
	}
	if len(backup.Templates.Templates[0].Layers) != 2 {
		t.Errorf("expected 2 template layers, got %d", len(backup.Templates.Templates[0].Layers))
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"default_kerf_width":4}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	err := ExportAllData(path, model.DefaultAppConfig(), model.DefaultCatalog(), model.NewTemplateStore())
	if err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataFillsNilCollections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2025-01-01T00:00:00Z","config":{"recent_projects":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentProjects == nil {
		t.Error("RecentProjects should not be nil after import")
	}
	if backup.Templates.Templates == nil {
		t.Error("Templates should not be nil after import")
	}
}
