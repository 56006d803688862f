package cli

import (
	"errors"

	"github.com/usdAG/reftool/internal/atomicfile"
	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/reference"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Reference errors
	ErrRefNotFound  = "REF_NOT_FOUND"
	ErrNoItems      = "NO_ITEMS"
	ErrNoteNotFound = "NOTE_NOT_FOUND"

	// Input errors
	ErrInvalidInput      = "INVALID_INPUT"
	ErrInvalidExpression = "INVALID_EXPRESSION"

	// Render errors
	ErrRenderConfig = "RENDER_CONFIG_INVALID"

	// File errors
	ErrFileExists     = "FILE_EXISTS"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Clipboard errors
	ErrClipboard = "CLIPBOARD_ERROR"

	// Picker errors
	ErrPickerFailed = "PICKER_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes.
const (
	WarnMissingParameters = "MISSING_PARAMETERS"
)

// classifyError maps a returned error to its stable code and a suggestion.
func classifyError(err error) (string, string) {
	var layoutErr *layout.ConfigError
	switch {
	case errors.Is(err, reference.ErrReferenceNotFound):
		return ErrRefNotFound, "Run 'ref list' to see available references"
	case errors.Is(err, reference.ErrNoItems):
		return ErrNoItems, "Add an Items section to the reference file"
	case errors.Is(err, reference.ErrNoteNotFound):
		return ErrNoteNotFound, "Run 'ref show <reference>' to see note numbers"
	case errors.Is(err, reference.ErrInvalidExpression):
		return ErrInvalidExpression, "Expressions use Go regular expression syntax"
	case errors.Is(err, atomicfile.ErrExists):
		return ErrFileExists, ""
	case errors.As(err, &layoutErr):
		return ErrRenderConfig, "Check the [reference], [item] and [note] sections of the config file"
	default:
		return ErrInternal, ""
	}
}
