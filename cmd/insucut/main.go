// InsuCut — Insulation Thermal & Cutting Calculator
//
// Runs the full design pipeline on a saved project: fit material
// conductivity curves, solve steady-state conduction through the layer
// stack, derive the nested box panels and pack them onto stock sheets,
// then write the requested export artifacts.
//
// Build:
//   go build -o insucut ./cmd/insucut
//
// Usage:
//   insucut -project furnace.json -pdf plan.pdf -xlsx plan.xlsx

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/InsuCut/internal/engine"
	"github.com/piwi3910/InsuCut/internal/export"
	"github.com/piwi3910/InsuCut/internal/geometry"
	"github.com/piwi3910/InsuCut/internal/model"
	"github.com/piwi3910/InsuCut/internal/project"
	"github.com/piwi3910/InsuCut/internal/thermal"
)

func main() {
	var (
		projectPath = flag.String("project", "", "project JSON file (required)")
		catalogPath = flag.String("catalog", "", "material catalog JSON file (default ~/.insucut/catalog.json)")
		pdfPath     = flag.String("pdf", "", "write the cutting plan PDF to this path")
		labelsPath  = flag.String("labels", "", "write QR panel labels PDF to this path")
		xlsxPath    = flag.String("xlsx", "", "write the Excel workbook to this path")
		dxfPath     = flag.String("dxf", "", "write the DXF drawing to this path")
		savePath    = flag.String("save", "", "save the project with results to this path")
		kerf        = flag.Float64("kerf", -1, "override saw kerf in mm")
	)
	flag.Parse()

	if *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*projectPath, *catalogPath, *pdfPath, *labelsPath, *xlsxPath, *dxfPath, *savePath, *kerf); err != nil {
		fmt.Fprintf(os.Stderr, "insucut: %v\n", err)
		os.Exit(1)
	}
}

func run(projectPath, catalogPath, pdfPath, labelsPath, xlsxPath, dxfPath, savePath string, kerf float64) error {
	proj, err := project.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if catalogPath == "" {
		catalogPath = config.CatalogPath
	}

	var catalog model.Catalog
	if catalogPath != "" {
		catalog, err = project.LoadCatalog(catalogPath)
	} else {
		catalog, _, err = project.LoadOrCreateCatalog()
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if kerf >= 0 {
		proj.Settings.KerfWidth = kerf
	}

	conduction, err := thermal.Solve(&catalog, thermal.Input{
		Layers: proj.Layers,
		TLeft:  proj.Boundary.THot,
		TInf:   proj.Boundary.TAmbient,
		HConv:  proj.Boundary.HConv,
	}, proj.Settings)
	if err != nil {
		return fmt.Errorf("solving conduction: %w", err)
	}

	build, err := geometry.Build(proj.Layers, proj.Mode, proj.Dimensions)
	if err != nil {
		return fmt.Errorf("building geometry: %w", err)
	}

	plan, err := engine.New(proj.Settings.KerfWidth).Pack(&catalog, build.Panels)
	if err != nil {
		return fmt.Errorf("packing panels: %w", err)
	}

	proj.Conduction = &conduction
	proj.Geometry = &build
	proj.Plan = &plan

	printSummary(proj, conduction, build, plan)

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, plan, &conduction); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("wrote %s\n", pdfPath)
	}
	if labelsPath != "" {
		if err := export.ExportLabels(labelsPath, plan); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		fmt.Printf("wrote %s\n", labelsPath)
	}
	if xlsxPath != "" {
		if err := export.ExportExcel(xlsxPath, plan, &conduction); err != nil {
			return fmt.Errorf("writing Excel workbook: %w", err)
		}
		fmt.Printf("wrote %s\n", xlsxPath)
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, plan); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
		fmt.Printf("wrote %s\n", dxfPath)
	}

	if savePath != "" {
		if err := project.SaveProject(savePath, proj); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
		project.AddRecentProject(&config, savePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("saved %s\n", savePath)
	}

	return nil
}

func printSummary(proj model.Project, conduction model.ConductionResult, build model.BuildResult, plan model.CutPlan) {
	fmt.Printf("Project: %s\n\n", proj.Name)

	fmt.Printf("Thermal: q = %.2f W/m², R = %.4f m²K/W (%d iterations)\n",
		conduction.HeatFlux, conduction.TotalResistance, conduction.Iterations)
	fmt.Print("Interface temperatures:")
	for _, temp := range conduction.InterfaceTemps {
		fmt.Printf(" %.1f°C", temp)
	}
	fmt.Println()

	fmt.Printf("\nGeometry: outer %.0fx%.0fx%.0f mm, inner %.0fx%.0fx%.0f mm, %d panels\n",
		build.Outer.L, build.Outer.B, build.Outer.H,
		build.Inner.L, build.Inner.B, build.Inner.H, len(build.Panels))

	fmt.Printf("\nCutting plan: %d sheets, %.1f%% efficiency\n", plan.TotalBins, plan.TotalEfficiency())
	for _, u := range plan.Usage {
		line := fmt.Sprintf("  %s: %d x %s", u.Material, u.Bins, u.Variant)
		if u.Subtotal != nil {
			line += fmt.Sprintf(" = %.2f", *u.Subtotal)
		} else {
			line += " (price unknown)"
		}
		fmt.Println(line)
	}
	cost := fmt.Sprintf("Total cost: %.2f", plan.TotalCost)
	if !plan.PriceComplete {
		cost += " (incomplete: some prices unknown)"
	}
	fmt.Println(cost)
}
