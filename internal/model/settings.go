package model

// SolveSettings holds solver and cutting configuration for a project.
type SolveSettings struct {
	Tolerance     float64 `json:"tolerance"`      // convergence tolerance on layer-average temperature, °C
	MaxIterations int     `json:"max_iterations"` // solver iteration cap
	KerfWidth     float64 `json:"kerf_width"`     // saw blade width added to each packed panel, mm
}

func DefaultSettings() SolveSettings {
	return SolveSettings{
		Tolerance:     0.5,
		MaxIterations: 100,
		KerfWidth:     4.0,
	}
}
