package vocab

import (
	"fmt"
	"strings"
)

// FileOpenError indicates the spreadsheet could not be opened or the requested
// sheet does not exist.
type FileOpenError struct {
	Path  string
	Sheet string // empty when the workbook itself failed to open
	Err   error
}

func (e *FileOpenError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("open sheet %q in %s: %v", e.Sheet, e.Path, e.Err)
	}
	return fmt.Sprintf("open workbook %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// MissingColumnsError lists every required header absent from the sheet.
type MissingColumnsError struct {
	Sheet   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %q is missing required columns: %s", e.Sheet, strings.Join(e.Columns, ", "))
}

// SaveError indicates the deck could not be serialized to Path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save deck to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// TemplateError indicates the sample template could not be located, created
// or opened.
type TemplateError struct {
	Op  string // "locate", "copy", "create", "open"
	Err error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Op, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
