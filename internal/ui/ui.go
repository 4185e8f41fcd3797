// Package ui is the desktop form for picking a workbook, sheet and output path.
// Build with -tags nogui to leave it out; Run then returns ErrUnavailable.
package ui

import "errors"

// ErrUnavailable is returned by Run in builds without the desktop form.
var ErrUnavailable = errors.New("desktop form not included in this build")
