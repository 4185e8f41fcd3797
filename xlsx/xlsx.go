// Package xlsx reads vocabulary records out of XLSX workbooks and writes the
// sample template workbook.
package xlsx

import (
	"github.com/aerissecure/worddeck/vocab"
)

// LoadRecords opens the workbook at path and returns one record per data row of
// sheet, or of the active sheet when sheet is empty.
//
// The header row is validated before any record is built: a sheet lacking one
// or more required columns yields a *vocab.MissingColumnsError naming all of
// them. Workbook and sheet lookup failures yield a *vocab.FileOpenError.
func LoadRecords(path, sheet string) ([]vocab.Record, error) {
	model, err := ParseFile(path)
	if err != nil {
		return nil, &vocab.FileOpenError{Path: path, Err: err}
	}
	s, err := model.Sheet(sheet)
	if err != nil {
		return nil, &vocab.FileOpenError{Path: path, Sheet: sheet, Err: err}
	}
	return s.Records()
}

// SheetNames lists the sheets of the workbook at path in workbook order.
func SheetNames(path string) ([]string, error) {
	model, err := ParseFile(path)
	if err != nil {
		return nil, &vocab.FileOpenError{Path: path, Err: err}
	}
	return model.SheetNames(), nil
}

// Headers returns the text of the first row.
func (s Sheet) Headers() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0].Cells
}

// Records validates the header row and zips it with every following row.
// Columns with an empty header are dropped; a later duplicate header wins.
func (s Sheet) Records() ([]vocab.Record, error) {
	headers := s.Headers()
	if missing := vocab.MissingColumns(headers); len(missing) > 0 {
		return nil, &vocab.MissingColumnsError{Sheet: s.Name, Columns: missing}
	}

	records := make([]vocab.Record, 0, len(s.Rows)-1)
	for _, row := range s.Rows[1:] {
		rec := make(vocab.Record, len(headers))
		for col, name := range headers {
			if name == "" {
				continue
			}
			rec[name] = row.Cell(col)
		}
		records = append(records, rec)
	}
	return records, nil
}
