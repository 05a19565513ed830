package tablegrid

import (
	"io"
	"log"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// Loader seeds editing sessions from the ruling lines of PDF pages.
type Loader struct {
	instance pdfium.Pdfium
	settings SeedSettings
}

// NewLoader creates a loader with default seed settings.
func NewLoader(instance pdfium.Pdfium) *Loader {
	return &Loader{
		instance: instance,
		settings: DefaultSeedSettings(),
	}
}

// NewLoaderWithSettings creates a loader with custom seed settings.
func NewLoaderWithSettings(instance pdfium.Pdfium, settings SeedSettings) *Loader {
	return &Loader{
		instance: instance,
		settings: settings,
	}
}

// LoadFile seeds a layout from one page of a PDF file.
func (l *Loader) LoadFile(filePath string, pageIndex int) (*Layout, error) {
	return l.load(&requests.OpenDocument{FilePath: &filePath}, pageIndex)
}

// LoadBytes seeds a layout from one page of an in-memory PDF.
func (l *Loader) LoadBytes(pdfBytes []byte, pageIndex int) (*Layout, error) {
	return l.load(&requests.OpenDocument{File: &pdfBytes}, pageIndex)
}

// LoadReader seeds a layout from one page of a PDF read from reader.
func (l *Loader) LoadReader(reader io.ReadSeeker, pageIndex int) (*Layout, error) {
	return l.load(&requests.OpenDocument{FileReader: reader}, pageIndex)
}

// PageCount returns the number of pages in a PDF file.
func (l *Loader) PageCount(filePath string) (int, error) {
	doc, err := l.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := l.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get page count")
	}
	return pageCount.PageCount, nil
}

func (l *Loader) load(open *requests.OpenDocument, pageIndex int) (*Layout, error) {
	startTime := time.Now()

	doc, err := l.instance.OpenDocument(open)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := l.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}
	if pageIndex < 0 || pageIndex >= pageCount.PageCount {
		return nil, errors.Errorf("page %d out of range: document has %d pages", pageIndex, pageCount.PageCount)
	}

	layout, err := l.loadPage(doc.Document, pageIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed page %d", pageIndex+1)
	}

	if l.settings.EnableMetricsLogging {
		log.Printf("Page %d/%d seeded in %v: %d vertical, %d horizontal lines",
			pageIndex+1, pageCount.PageCount, time.Since(startTime).Round(time.Millisecond),
			len(layout.Structure.VerticalLines), len(layout.Structure.HorizontalLines))
	}
	return layout, nil
}

func (l *Loader) loadPage(docRef references.FPDF_DOCUMENT, pageIndex int) (*Layout, error) {
	pageResp, err := l.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{
		Document: docRef,
		Index:    pageIndex,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}
	defer l.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: pageResp.Page,
	})

	return ExtractLayout(l.instance, pageResp.Page, l.settings)
}

// ExtractLayout seeds a layout from an already loaded page.
func ExtractLayout(instance pdfium.Pdfium, page references.FPDF_PAGE, settings SeedSettings) (*Layout, error) {
	pageWidth, err := instance.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page width")
	}

	pageHeight, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page height")
	}

	width := float64(pageWidth.PageWidth)
	height := float64(pageHeight.PageHeight)

	edges, err := extractRulings(instance, page, width, height, settings)
	if err != nil {
		return nil, err
	}
	return LayoutFromEdges(edges, width, height, settings)
}
