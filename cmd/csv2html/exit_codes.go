package main

import (
	"errors"
	"os"

	csv2html "github.com/alnah/go-csv2html"
	"github.com/alnah/go-csv2html/internal/config"
)

// Exit codes for csv2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Fragment written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during PDF preview
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, csv2html.ErrBrowserConnect) ||
		errors.Is(err, csv2html.ErrPageCreate) ||
		errors.Is(err, csv2html.ErrPageLoad) ||
		errors.Is(err, csv2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrReadIntro) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, csv2html.ErrNoHeader) ||
		errors.Is(err, csv2html.ErrMissingColumn) ||
		errors.Is(err, csv2html.ErrNoValidRows) ||
		errors.Is(err, csv2html.ErrUnknownMode) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
