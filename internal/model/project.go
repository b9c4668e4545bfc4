package model

// BoundaryConditions holds the thermal boundary of a design: the hot-face
// temperature, the ambient temperature and the outer convection coefficient.
type BoundaryConditions struct {
	THot     float64 `json:"t_hot"`     // °C
	TAmbient float64 `json:"t_ambient"` // °C
	HConv    float64 `json:"h_conv"`    // W/m²K
}

// Project ties everything together for save/load: the layer stack, the
// thermal boundary, the enclosure geometry and the settings, plus the last
// computed results when present.
type Project struct {
	Name       string             `json:"name"`
	Layers     []Layer            `json:"layers"`
	Boundary   BoundaryConditions `json:"boundary"`
	Mode       BoxMode            `json:"mode"`
	Dimensions Dimensions         `json:"dimensions"`
	Settings   SolveSettings      `json:"settings"`

	Conduction *ConductionResult `json:"conduction,omitempty"`
	Geometry   *BuildResult      `json:"geometry,omitempty"`
	Plan       *CutPlan          `json:"plan,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Layers:   []Layer{},
		Mode:     BoxOuter,
		Settings: DefaultSettings(),
	}
}

// ClearResults drops any stored results, used when the inputs change.
func (p *Project) ClearResults() {
	p.Conduction = nil
	p.Geometry = nil
	p.Plan = nil
}
