// Package pdf provides a page source adapter that reports page
// dimensions of cached documents by shelling out to pdfinfo (poppler).
package pdf

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure PDFInfoSource implements the interface.
var _ driven.PageSource = (*PDFInfoSource)(nil)

// DefaultBinary is the poppler pdfinfo executable name.
const DefaultBinary = "pdfinfo"

// pageReport holds the parsed pdfinfo output for one document.
type pageReport struct {
	pages int
	sizes map[int]domain.PageSize
}

// PDFInfoSource measures pages of documents cached in the file store.
// Reports are cached per file id; cached documents never change, so the
// cache needs no invalidation.
type PDFInfoSource struct {
	files  driven.FileStore
	binary string

	mu      sync.Mutex
	reports map[string]*pageReport
}

// NewPDFInfoSource creates a page source backed by the given file store.
// An empty binary falls back to "pdfinfo" on PATH.
func NewPDFInfoSource(files driven.FileStore, binary string) *PDFInfoSource {
	if binary == "" {
		binary = DefaultBinary
	}
	return &PDFInfoSource{
		files:   files,
		binary:  binary,
		reports: make(map[string]*pageReport),
	}
}

// PageSize returns the dimensions of the given 1-based page.
func (s *PDFInfoSource) PageSize(ctx context.Context, fileID string, page int) (domain.PageSize, error) {
	report, err := s.report(ctx, fileID)
	if err != nil {
		return domain.PageSize{}, err
	}
	size, ok := report.sizes[page]
	if !ok {
		return domain.PageSize{}, fmt.Errorf("page %d of %s: %w", page, fileID, domain.ErrNotFound)
	}
	return size, nil
}

// PageCount returns the number of pages in the document.
func (s *PDFInfoSource) PageCount(ctx context.Context, fileID string) (int, error) {
	report, err := s.report(ctx, fileID)
	if err != nil {
		return 0, err
	}
	return report.pages, nil
}

// report returns the cached measurement, running pdfinfo on a cache miss.
func (s *PDFInfoSource) report(ctx context.Context, fileID string) (*pageReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if report, ok := s.reports[fileID]; ok {
		return report, nil
	}

	stored, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileID, err)
	}

	report, err := s.measure(ctx, stored)
	if err != nil {
		return nil, err
	}
	s.reports[fileID] = report
	return report, nil
}

// measure writes the cached bytes to a temp file and runs pdfinfo on it.
func (s *PDFInfoSource) measure(ctx context.Context, stored *driven.StoredFile) (*pageReport, error) {
	tmp, err := os.CreateTemp("", "cellspec-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(stored.Data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	// -l -1 reports the size of every page, not just the first.
	cmd := exec.CommandContext(ctx, s.binary, "-f", "1", "-l", "-1", tmp.Name())
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", filepath.Base(s.binary), stored.Name, err)
	}

	report, err := parsePDFInfo(string(output))
	if err != nil {
		return nil, fmt.Errorf("parsing %s output for %s: %w", filepath.Base(s.binary), stored.Name, err)
	}
	logger.Debug("pdf: measured %s: %d pages", stored.Name, report.pages)
	return report, nil
}

// parsePDFInfo extracts page counts and per-page sizes from pdfinfo
// output lines such as "Page    3 size: 612 x 792 pts (letter)".
func parsePDFInfo(output string) (*pageReport, error) {
	report := &pageReport{sizes: make(map[int]domain.PageSize)}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Pages:"):
			if _, err := fmt.Sscanf(line, "Pages: %d", &report.pages); err != nil {
				return nil, fmt.Errorf("bad pages line %q", line)
			}
		case strings.HasPrefix(line, "Page ") && strings.Contains(line, "size:"):
			var page int
			var width, height float64
			if _, err := fmt.Sscanf(line, "Page %d size: %f x %f pts", &page, &width, &height); err != nil {
				continue
			}
			report.sizes[page] = domain.PageSize{Width: width, Height: height}
		case strings.HasPrefix(line, "Page size:"):
			// Single-page documents report an unnumbered size line.
			var width, height float64
			if _, err := fmt.Sscanf(line, "Page size: %f x %f pts", &width, &height); err != nil {
				continue
			}
			report.sizes[1] = domain.PageSize{Width: width, Height: height}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(report.sizes) == 0 {
		return nil, fmt.Errorf("no page sizes reported")
	}
	if report.pages == 0 {
		report.pages = len(report.sizes)
	}
	return report, nil
}
