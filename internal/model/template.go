package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate is a reusable design configuration that captures the layer
// stack, boundary conditions and settings but not computed results.
type ProjectTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	Layers      []Layer            `json:"layers"`
	Boundary    BoundaryConditions `json:"boundary"`
	Mode        BoxMode            `json:"mode"`
	Dimensions  Dimensions         `json:"dimensions"`
	Settings    SolveSettings      `json:"settings"`
}

// NewProjectTemplate creates a template from the given project data.
// Computed results are intentionally excluded.
func NewProjectTemplate(name, description string, p Project) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Layers:      copyLayers(p.Layers),
		Boundary:    p.Boundary,
		Mode:        p.Mode,
		Dimensions:  p.Dimensions,
		Settings:    p.Settings,
	}
}

// ToProject creates a new Project from this template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	return Project{
		Name:       projectName,
		Layers:     copyLayers(t.Layers),
		Boundary:   t.Boundary,
		Mode:       t.Mode,
		Dimensions: t.Dimensions,
		Settings:   t.Settings,
	}
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyLayers(layers []Layer) []Layer {
	if layers == nil {
		return []Layer{}
	}
	cp := make([]Layer, len(layers))
	copy(cp, layers)
	return cp
}
