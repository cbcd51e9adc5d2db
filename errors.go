package csv2html

import (
	"errors"

	"github.com/alnah/go-csv2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNilTable      = errors.New("input table cannot be nil")
	ErrNoHeader      = errors.New("csv has no header row")
	ErrMissingColumn = errors.New("mandatory column not found")
	ErrNoValidRows   = errors.New("no valid rows after filtering")

	// PDF preview errors.
	ErrEmptyFragment  = errors.New("fragment cannot be empty")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)

// ErrUnknownMode indicates an unrecognized render mode. Re-exported so
// callers can match it without importing internal packages.
var ErrUnknownMode = pipeline.ErrUnknownMode
