// Package model defines the plain-data types shared by the thermal solver,
// the panel geometry builder and the cutting optimizer. All types are value
// objects with JSON tags; nothing in this package performs I/O.
package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidInput marks validation failures on caller-supplied data
// (non-positive dimensions, mismatched slice lengths, missing materials).
var ErrInvalidInput = errors.New("invalid input")

// MaterialSample is one measured (temperature, conductivity) point of a
// material's k(T) curve.
type MaterialSample struct {
	Temperature  float64 `json:"temperature_c"`      // °C
	Conductivity float64 `json:"conductivity_w_mk"` // W/mK
}

// StockVariant is a purchasable pre-sized sheet of a material.
type StockVariant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Thickness float64  `json:"thickness"`       // mm
	Length    float64  `json:"length"`          // mm
	Width     float64  `json:"width"`           // mm
	Price     *float64 `json:"price,omitempty"` // per sheet; nil means unknown, 0 means free
}

// NewStockVariant creates a StockVariant with a generated ID.
func NewStockVariant(name string, thickness, length, width float64, price *float64) StockVariant {
	return StockVariant{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Thickness: thickness,
		Length:    length,
		Width:     width,
		Price:     price,
	}
}

// Material is one entry of the material catalog: a conductivity sample table
// plus the purchasable stock variants of that material family.
type Material struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Samples  []MaterialSample `json:"samples"`
	Variants []StockVariant   `json:"variants"`
}

// NewMaterial creates a Material with a generated ID.
func NewMaterial(name string, samples []MaterialSample, variants []StockVariant) Material {
	return Material{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Samples:  samples,
		Variants: variants,
	}
}

// Layer is one slab of the multi-layer insulation wall, ordered 1..n along
// the conduction path from the hot face outward.
type Layer struct {
	Thickness float64 `json:"thickness"` // mm, > 0
	Material  string  `json:"material"`  // catalog material name
}
