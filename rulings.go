package tablegrid

import (
	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/enums"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// extractRulings collects horizontal and vertical path objects from a page.
// Rectangles contribute their four sides.
func extractRulings(instance pdfium.Pdfium, page references.FPDF_PAGE, pageWidth, pageHeight float64, settings SeedSettings) ([]Edge, error) {
	countResp, err := instance.FPDFPage_CountObjects(&requests.FPDFPage_CountObjects{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count page objects")
	}

	var edges []Edge
	// Page frames would otherwise make the whole page one table
	keep := func(e Edge) {
		if settings.SkipPageBorders && isPageBorder(e, pageWidth, pageHeight) {
			return
		}
		edges = append(edges, e)
	}

	for i := 0; i < countResp.Count; i++ {
		objResp, err := instance.FPDFPage_GetObject(&requests.FPDFPage_GetObject{
			Page: requests.Page{
				ByReference: &page,
			},
			Index: i,
		})
		if err != nil {
			continue
		}

		// Only path objects can be rulings
		typeResp, err := instance.FPDFPageObj_GetType(&requests.FPDFPageObj_GetType{
			PageObject: objResp.PageObject,
		})
		if err != nil || typeResp.Type != enums.FPDF_PAGEOBJ_PATH {
			continue
		}

		boundsResp, err := instance.FPDFPageObj_GetBounds(&requests.FPDFPageObj_GetBounds{
			PageObject: objResp.PageObject,
		})
		if err != nil {
			continue
		}

		// PDF space has its origin bottom-left; flip to top-left.
		x0 := float64(boundsResp.Left)
		y0 := pageHeight - float64(boundsResp.Top)
		x1 := float64(boundsResp.Right)
		y1 := pageHeight - float64(boundsResp.Bottom)

		// The segment count tells a drawn line from a rectangle
		segCountResp, err := instance.FPDFPath_CountSegments(&requests.FPDFPath_CountSegments{
			PageObject: objResp.PageObject,
		})
		if err != nil || segCountResp.Count < 2 {
			continue
		}

		// Two segments (move + line) is a single ruling
		if segCountResp.Count == 2 {
			if edge := pathToEdge(x0, y0, x1, y1); edge != nil {
				keep(*edge)
			}
			continue
		}
		// Rectangles and other closed shapes contribute their bounds
		if segCountResp.Count >= 4 {
			for _, edge := range boundsToEdges(x0, y0, x1, y1) {
				keep(edge)
			}
		}
	}

	return edges, nil
}

// isPageBorder reports whether an edge hugs the page boundary or spans
// nearly the whole page, which marks a page frame rather than a table.
func isPageBorder(edge Edge, pageWidth, pageHeight float64) bool {
	const borderTolerance = 20.0   // points from the page edge
	const fullSpanThreshold = 0.90 // fraction of the page dimension

	if edge.Orientation == "h" {
		// At the top or bottom of the page, or spanning its width
		if edge.Top < borderTolerance || edge.Top > pageHeight-borderTolerance {
			return true
		}
		return edge.Width > pageWidth*fullSpanThreshold
	}

	// At the left or right of the page, or spanning its height
	if edge.X0 < borderTolerance || edge.X0 > pageWidth-borderTolerance {
		return true
	}
	return edge.Height > pageHeight*fullSpanThreshold
}

// pathToEdge converts a two-point path into an edge when it is close to
// horizontal or vertical.
func pathToEdge(x0, y0, x1, y1 float64) *Edge {
	width := x1 - x0
	height := y1 - y0

	// Thin in one dimension and long enough in the other
	if height < 2.0 && width > 1.0 {
		return &Edge{X0: x0, X1: x1, Top: y0, Bottom: y1, Width: width, Height: height, Orientation: "h"}
	}
	if width < 2.0 && height > 1.0 {
		return &Edge{X0: x0, X1: x1, Top: y0, Bottom: y1, Width: width, Height: height, Orientation: "v"}
	}
	return nil
}

// boundsToEdges converts a rectangle into its four sides.
func boundsToEdges(x0, y0, x1, y1 float64) []Edge {
	return []Edge{
		{X0: x0, X1: x1, Top: y0, Bottom: y0, Width: x1 - x0, Orientation: "h"},
		{X0: x0, X1: x1, Top: y1, Bottom: y1, Width: x1 - x0, Orientation: "h"},
		{X0: x0, X1: x0, Top: y0, Bottom: y1, Height: y1 - y0, Orientation: "v"},
		{X0: x1, X1: x1, Top: y0, Bottom: y1, Height: y1 - y0, Orientation: "v"},
	}
}
