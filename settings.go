package tablegrid

// Edge is a horizontal or vertical ruling segment found on a PDF page, in
// PDF points with the origin at the top-left of the page.
type Edge struct {
	X0          float64 // Left x coordinate
	X1          float64 // Right x coordinate
	Top         float64 // Top y coordinate
	Bottom      float64 // Bottom y coordinate
	Width       float64 // Width (for horizontal edges)
	Height      float64 // Height (for vertical edges)
	Orientation string  // "h" for horizontal, "v" for vertical
}

// SeedSettings configures how ruling segments become a table structure.
type SeedSettings struct {
	// Tolerances for snapping close edges together
	SnapXTolerance float64
	SnapYTolerance float64

	// Tolerances for joining edges on the same line
	JoinXTolerance float64
	JoinYTolerance float64

	// Minimum edge length to consider
	EdgeMinLength float64

	// BorderTolerance is how close, in points, a ruling may be to the table
	// boundary and still count as the boundary rather than a grid line
	BorderTolerance float64

	// SkipPageBorders drops rulings that frame the whole page
	SkipPageBorders bool

	// EnableMetricsLogging logs page extraction timing and counts
	EnableMetricsLogging bool
}

// DefaultSeedSettings returns default settings for structure seeding.
func DefaultSeedSettings() SeedSettings {
	return SeedSettings{
		SnapXTolerance:  3.0,
		SnapYTolerance:  3.0,
		JoinXTolerance:  3.0,
		JoinYTolerance:  3.0,
		EdgeMinLength:   3.0,
		BorderTolerance: 3.0,
		SkipPageBorders: true,
	}
}
