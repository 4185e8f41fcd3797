package xlsx

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate representation.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	f, err := excelize.OpenReader(io.NewSectionReader(r, 0, size))
	if err != nil {
		return WorkbookModel{}, err
	}
	defer f.Close()
	return buildModel(f)
}

// ParseFile opens the workbook at path and returns the intermediate representation.
func ParseFile(path string) (WorkbookModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return WorkbookModel{}, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return WorkbookModel{}, err
	}
	return ParseWorkbookModel(f, info.Size())
}

func buildModel(f *excelize.File) (WorkbookModel, error) {
	model := WorkbookModel{Active: f.GetActiveSheetIndex()}

	for _, name := range f.GetSheetList() {
		// GetRows yields displayed text, with nil for rows absent from the
		// file and trailing empty rows and cells trimmed.
		rows, err := f.GetRows(name)
		if err != nil {
			return WorkbookModel{}, fmt.Errorf("read sheet %q: %w", name, err)
		}

		s := Sheet{Name: name, Rows: make([]Row, 0, len(rows))}
		for i, cells := range rows {
			row := Row{Number: i + 1, Cells: cells}
			if visible, err := f.GetRowVisible(name, row.Number); err == nil {
				row.Hidden = !visible
			}
			if len(cells) > s.ColCount {
				s.ColCount = len(cells)
			}
			s.Rows = append(s.Rows, row)
		}

		model.Sheets = append(model.Sheets, s)
	}

	if model.Active < 0 || model.Active >= len(model.Sheets) {
		model.Active = 0
	}
	return model, nil
}
