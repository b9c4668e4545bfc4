package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultTolerance     float64 `json:"default_tolerance"`
	DefaultMaxIterations int     `json:"default_max_iterations"`
	DefaultKerfWidth     float64 `json:"default_kerf_width"`

	// Application preferences
	CatalogPath    string   `json:"catalog_path"` // material catalog file; empty = built-in defaults
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultTolerance:     defaults.Tolerance,
		DefaultMaxIterations: defaults.MaxIterations,
		DefaultKerfWidth:     defaults.KerfWidth,
		RecentProjects:       []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// SolveSettings struct, used when creating a new project.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.Tolerance = c.DefaultTolerance
	s.MaxIterations = c.DefaultMaxIterations
	s.KerfWidth = c.DefaultKerfWidth
}
