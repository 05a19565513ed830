package tablegrid_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/enums"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/tablegrid"
)

const (
	ruledPageWidth  = 600.0
	ruledPageHeight = 800.0
)

func newTestInstance(t *testing.T) pdfium.Pdfium {
	t.Helper()

	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	instance, err := pool.GetInstance(time.Second * 30)
	require.NoError(t, err)
	return instance
}

// buildRuledPDF draws a single page holding a framed 3x3 table. The frame
// covers x 100..500 and y 100..400 measured from the top of the page, with
// column rules at x 200 and 300 and row rules at y 200 and 300.
func buildRuledPDF(t *testing.T, instance pdfium.Pdfium) []byte {
	t.Helper()

	doc, err := instance.FPDF_CreateNewDocument(&requests.FPDF_CreateNewDocument{})
	require.NoError(t, err)
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageResp, err := instance.FPDFPage_New(&requests.FPDFPage_New{
		Document:  doc.Document,
		PageIndex: 0,
		Width:     ruledPageWidth,
		Height:    ruledPageHeight,
	})
	require.NoError(t, err)
	page := pageResp.Page
	defer instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: page,
	})

	// PDF space has its origin bottom-left, so the frame spans y 400..700.
	frame, err := instance.FPDFPageObj_CreateNewRect(&requests.FPDFPageObj_CreateNewRect{
		X: 100, Y: 400, W: 400, H: 300,
	})
	require.NoError(t, err)
	insertStroked(t, instance, page, frame.PageObject)

	rules := [][4]float32{
		{200, 400, 200, 700},
		{300, 400, 300, 700},
		{100, 600, 500, 600},
		{100, 500, 500, 500},
	}
	for _, r := range rules {
		path, err := instance.FPDFPageObj_CreateNewPath(&requests.FPDFPageObj_CreateNewPath{
			X: r[0], Y: r[1],
		})
		require.NoError(t, err)
		_, err = instance.FPDFPath_LineTo(&requests.FPDFPath_LineTo{
			PageObject: path.PageObject,
			X:          r[2],
			Y:          r[3],
		})
		require.NoError(t, err)
		insertStroked(t, instance, page, path.PageObject)
	}

	_, err = instance.FPDFPage_GenerateContent(&requests.FPDFPage_GenerateContent{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	require.NoError(t, err)

	saved, err := instance.FPDF_SaveAsCopy(&requests.FPDF_SaveAsCopy{
		Document: doc.Document,
	})
	require.NoError(t, err)
	require.NotNil(t, saved.FileBytes)
	return *saved.FileBytes
}

func insertStroked(t *testing.T, instance pdfium.Pdfium, page references.FPDF_PAGE, obj references.FPDF_PAGEOBJECT) {
	t.Helper()

	_, err := instance.FPDFPath_SetDrawMode(&requests.FPDFPath_SetDrawMode{
		PageObject: obj,
		FillMode:   enums.FPDF_FILLMODE_NONE,
		Stroke:     true,
	})
	require.NoError(t, err)

	_, err = instance.FPDFPageObj_SetStrokeWidth(&requests.FPDFPageObj_SetStrokeWidth{
		PageObject:  obj,
		StrokeWidth: 0.5,
	})
	require.NoError(t, err)

	_, err = instance.FPDFPage_InsertObject(&requests.FPDFPage_InsertObject{
		Page: requests.Page{
			ByReference: &page,
		},
		PageObject: obj,
	})
	require.NoError(t, err)
}

// requireRuledGrid checks a layout against the table drawn by buildRuledPDF.
// Stroke width widens path bounds slightly, so positions are compared
// within a point.
func requireRuledGrid(t *testing.T, layout *tablegrid.Layout) {
	t.Helper()

	const dx, dy = 1.0 / ruledPageWidth, 1.0 / ruledPageHeight

	require.Equal(t, ruledPageWidth, layout.PageWidth)
	require.Equal(t, ruledPageHeight, layout.PageHeight)

	box, err := tablegrid.BoundingBoxOf(layout.Polygon.Vertices)
	require.NoError(t, err)
	require.InDelta(t, 100/ruledPageWidth, box.MinX, dx)
	require.InDelta(t, 500/ruledPageWidth, box.MaxX, dx)
	require.InDelta(t, 100/ruledPageHeight, box.MinY, dy)
	require.InDelta(t, 400/ruledPageHeight, box.MaxY, dy)

	vertical := layout.Structure.Positions(tablegrid.Vertical)
	require.Len(t, vertical, 2)
	require.InDelta(t, 200/ruledPageWidth, vertical[0], dx)
	require.InDelta(t, 300/ruledPageWidth, vertical[1], dx)

	horizontal := layout.Structure.Positions(tablegrid.Horizontal)
	require.Len(t, horizontal, 2)
	require.InDelta(t, 200/ruledPageHeight, horizontal[0], dy)
	require.InDelta(t, 300/ruledPageHeight, horizontal[1], dy)
}

// TestLoader_LoadBytes tests seeding a grid from an in-memory ruled page
func TestLoader_LoadBytes(t *testing.T) {
	instance := newTestInstance(t)
	pdfBytes := buildRuledPDF(t, instance)

	loader := tablegrid.NewLoader(instance)
	layout, err := loader.LoadBytes(pdfBytes, 0)
	require.NoError(t, err)
	requireRuledGrid(t, layout)

	// The seeded layout opens as an editing session.
	editor, err := tablegrid.NewEditor(layout.Structure, layout.Polygon, testViewport, tablegrid.DefaultConfig(), tablegrid.Callbacks{})
	require.NoError(t, err)
	editor.Close()
}

// TestLoader_FileAndReader tests the file and reader entry points
func TestLoader_FileAndReader(t *testing.T) {
	instance := newTestInstance(t)
	pdfBytes := buildRuledPDF(t, instance)

	path := filepath.Join(t.TempDir(), "ruled.pdf")
	require.NoError(t, os.WriteFile(path, pdfBytes, 0644))

	loader := tablegrid.NewLoaderWithSettings(instance, tablegrid.DefaultSeedSettings())

	count, err := loader.PageCount(path)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	layout, err := loader.LoadFile(path, 0)
	require.NoError(t, err)
	requireRuledGrid(t, layout)

	layout, err = loader.LoadReader(bytes.NewReader(pdfBytes), 0)
	require.NoError(t, err)
	requireRuledGrid(t, layout)
}

// TestLoader_PageOutOfRange tests page index validation
func TestLoader_PageOutOfRange(t *testing.T) {
	instance := newTestInstance(t)
	pdfBytes := buildRuledPDF(t, instance)

	loader := tablegrid.NewLoader(instance)
	for _, page := range []int{-1, 1} {
		_, err := loader.LoadBytes(pdfBytes, page)
		require.Error(t, err, "page %d", page)
	}
}

// TestLoader_MissingFile tests open failures
func TestLoader_MissingFile(t *testing.T) {
	instance := newTestInstance(t)
	loader := tablegrid.NewLoader(instance)

	missing := filepath.Join(t.TempDir(), "missing.pdf")
	_, err := loader.LoadFile(missing, 0)
	require.Error(t, err)

	_, err = loader.PageCount(missing)
	require.Error(t, err)
}
