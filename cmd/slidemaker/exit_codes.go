package main

import (
	"context"
	"errors"
	"os"

	slidemaker "github.com/alnah/go-slidemaker"
	"github.com/alnah/go-slidemaker/internal/config"
)

// Exit codes for the slidemaker CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Deck generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, text or template
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, slidemaker.ErrBrowserConnect) ||
		errors.Is(err, slidemaker.ErrPageCreate) ||
		errors.Is(err, slidemaker.ErrPageLoad) ||
		errors.Is(err, slidemaker.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrLabelsRefused) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, slidemaker.ErrEmptyDocument) ||
		errors.Is(err, slidemaker.ErrNoSelection) ||
		errors.Is(err, slidemaker.ErrInvalidSelection) ||
		errors.Is(err, slidemaker.ErrInvalidServiceType) ||
		errors.Is(err, slidemaker.ErrReservedLabelsPresent) ||
		errors.Is(err, slidemaker.ErrMissingFileName) ||
		errors.Is(err, slidemaker.ErrTemplateLayoutMissing) ||
		errors.Is(err, slidemaker.ErrTemplateSetNotFound) ||
		errors.Is(err, slidemaker.ErrIncompleteTemplateSet) ||
		errors.Is(err, slidemaker.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
