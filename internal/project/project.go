package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/InsuCut/internal/model"
)

// SaveProject writes a design to the specified JSON file, creating parent
// directories if needed.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a design from the specified JSON file.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if p.Layers == nil {
		p.Layers = []model.Layer{}
	}
	if p.Mode == "" {
		p.Mode = model.BoxOuter
	}
	return p, nil
}
