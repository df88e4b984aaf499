// Package report renders analysis results into a PDF engineering report.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Yashvi2874/digiform/pkg/engine"
	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// Input bundles everything one report covers. Structural is optional:
// a mass-properties-only report omits the analysis section.
type Input struct {
	Title      string
	Author     string
	Shape      shape.Descriptor
	Material   material.Record
	Mass       *engine.MassProperties
	Structural *engine.StructuralResult
}

// Generate writes an A4 PDF report to w.
func Generate(w io.Writer, in Input) error {
	if in.Title == "" {
		in.Title = "Engineering Report"
	}
	if in.Mass == nil {
		return fmt.Errorf("report: mass properties are required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeShapeSection(pdf, in.Shape)
	writeMaterialSection(pdf, in.Material)
	writeMassSection(pdf, in.Mass)
	if in.Structural != nil {
		writeStructuralSection(pdf, in.Structural)
	}

	return pdf.Output(w)
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(70, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func writeShapeSection(pdf *gofpdf.Fpdf, desc shape.Descriptor) {
	sectionHeader(pdf, "Geometry")
	row(pdf, "Shape family", desc.Family.String())
	params, err := shape.Resolve(desc)
	if err != nil {
		row(pdf, "Parameters", "unavailable")
		pdf.Ln(4)
		return
	}
	for _, name := range sortedKeys(params) {
		if name == "isHollow" {
			continue
		}
		row(pdf, name, fmt.Sprintf("%.2f mm", params[name]))
	}
	pdf.Ln(4)
}

func writeMaterialSection(pdf *gofpdf.Fpdf, rec material.Record) {
	sectionHeader(pdf, "Material")
	row(pdf, "Name", rec.Name)
	row(pdf, "Density", fmt.Sprintf("%.0f kg/m3", rec.Density))
	row(pdf, "Young's modulus", fmt.Sprintf("%.1f GPa", rec.YoungsModulus/1e9))
	row(pdf, "Poisson's ratio", fmt.Sprintf("%.2f", rec.PoissonsRatio))
	row(pdf, "Yield strength", fmt.Sprintf("%.0f MPa", rec.YieldStrength/1e6))
	row(pdf, "Ultimate strength", fmt.Sprintf("%.0f MPa", rec.UltimateStrength/1e6))
	pdf.Ln(4)
}

func writeMassSection(pdf *gofpdf.Fpdf, props *engine.MassProperties) {
	sectionHeader(pdf, "Mass Properties")
	row(pdf, "Volume", fmt.Sprintf("%.2f mm3", props.Volume))
	row(pdf, "Surface area", fmt.Sprintf("%.2f mm2", props.SurfaceArea))
	row(pdf, "Mass", fmt.Sprintf("%.4f kg", props.Mass))
	row(pdf, "Center of mass", fmt.Sprintf("(%.2f, %.2f, %.2f) mm",
		props.CenterOfMass.X, props.CenterOfMass.Y, props.CenterOfMass.Z))
	row(pdf, "Moments of inertia", fmt.Sprintf("Ixx %.2f / Iyy %.2f / Izz %.2f kg.mm2",
		props.MomentsOfInertia.Ixx, props.MomentsOfInertia.Iyy, props.MomentsOfInertia.Izz))
	pdf.Ln(4)
}

func writeStructuralSection(pdf *gofpdf.Fpdf, res *engine.StructuralResult) {
	sectionHeader(pdf, "Structural Analysis")
	row(pdf, "Max bending stress", fmt.Sprintf("%.3f MPa", res.MaxBendingStress/1e6))
	row(pdf, "Max von Mises stress", fmt.Sprintf("%.3f MPa", res.MaxVonMisesStress/1e6))
	row(pdf, "Max displacement", fmt.Sprintf("%.4f mm", res.MaxDisplacement*1000))
	row(pdf, "Reaction force", fmt.Sprintf("%.2f N", res.ReactionForce))
	row(pdf, "Reaction moment", fmt.Sprintf("%.2f Nm", res.ReactionMoment))
	row(pdf, "Safety factor", fmt.Sprintf("%.3f", res.SafetyFactor))

	if res.Status == engine.StatusSafe {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.SetFont("Helvetica", "B", 11)
	row(pdf, "Verdict", string(res.Status))
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)
}

func sortedKeys(p shape.Params) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
