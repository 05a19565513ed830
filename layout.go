package tablegrid

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Layout is an editable table: its grid, its outline and the page it was
// found on. Coordinates in Structure and Polygon are normalized.
type Layout struct {
	Structure  TableStructure  `yaml:"structure"`
	Polygon    BoundingPolygon `yaml:"polygon"`
	PageWidth  float64         `yaml:"pageWidth,omitempty"`
	PageHeight float64         `yaml:"pageHeight,omitempty"`
}

// LayoutFromEdges builds a Layout from ruling segments measured in page
// points. The envelope of all rulings becomes the bounding polygon; every
// other distinct ruling position becomes a grid line spanning the table.
func LayoutFromEdges(edges []Edge, pageWidth, pageHeight float64, settings SeedSettings) (*Layout, error) {
	if pageWidth <= 0 || pageHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "page is %gx%g", pageWidth, pageHeight)
	}

	edges = mergeEdges(edges, settings)
	edges = filterEdgesByLength(edges, settings.EdgeMinLength)
	if len(edges) == 0 {
		return nil, ErrNoRulings
	}

	var xs, ys, vPos, hPos []float64
	for _, e := range edges {
		xs = append(xs, e.X0, e.X1)
		ys = append(ys, e.Top, e.Bottom)
		if e.Orientation == "v" {
			vPos = append(vPos, e.X0)
		} else {
			hPos = append(hPos, e.Top)
		}
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)

	polygon := BoundingBox{
		MinX: minX / pageWidth,
		MinY: minY / pageHeight,
		MaxX: maxX / pageWidth,
		MaxY: maxY / pageHeight,
	}.Polygon()
	box, err := BoundingBoxOf(polygon.Vertices)
	if err != nil {
		return nil, errors.Wrap(err, "rulings do not enclose an area")
	}

	var structure TableStructure
	for _, x := range interiorPositions(vPos, minX, maxX, settings.SnapXTolerance, settings.BorderTolerance) {
		structure.VerticalLines = append(structure.VerticalLines, box.SpanLine(Vertical, x/pageWidth))
	}
	for _, y := range interiorPositions(hPos, minY, maxY, settings.SnapYTolerance, settings.BorderTolerance) {
		structure.HorizontalLines = append(structure.HorizontalLines, box.SpanLine(Horizontal, y/pageHeight))
	}

	return &Layout{
		Structure:  structure,
		Polygon:    polygon,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}, nil
}

// interiorPositions sorts positions, collapses duplicates within tolerance
// and drops those lying on the lo/hi boundary.
func interiorPositions(positions []float64, lo, hi, tolerance, border float64) []float64 {
	sorted := make([]float64, len(positions))
	copy(sorted, positions)
	sort.Float64s(sorted)

	var result []float64
	for _, p := range sorted {
		if approxEqual(p, lo, border) || approxEqual(p, hi, border) {
			continue
		}
		if len(result) > 0 && approxEqual(p, result[len(result)-1], tolerance) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// LoadLayoutYAML reads a Layout from a YAML file.
func LoadLayoutYAML(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read layout file")
	}
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, errors.Wrapf(err, "failed to parse layout file %s", path)
	}
	if _, err := BoundingBoxOf(layout.Polygon.Vertices); err != nil {
		return nil, errors.Wrapf(err, "layout file %s", path)
	}
	return &layout, nil
}
