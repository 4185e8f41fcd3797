package xlsx

import (
	"fmt"
)

// Intermediate representation for a vocabulary workbook. Only displayed cell
// text is kept; styles play no part in slide generation.

// Row represents one sheet row. Cells is indexed by zero-based column and may be
// shorter than the sheet width; a row absent from the file has nil Cells.
type Row struct {
	Number int // 1-based row number in the sheet
	Hidden bool
	Cells  []string
}

// Cell returns the text at zero-based column col, or "" when the cell is absent.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

func (r Row) String() string {
	return fmt.Sprintf("Number: %d, Hidden: %t, Cells: %d", r.Number, r.Hidden, len(r.Cells))
}

// Sheet is the intermediate representation of a worksheet.
type Sheet struct {
	Name     string
	ColCount int   // widest row seen
	Rows     []Row // Rows[i].Number == i+1
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, ColCount: %d, Rows: %d", s.Name, s.ColCount, len(s.Rows))
}

// WorkbookModel is the top-level IR containing all sheets in workbook order.
type WorkbookModel struct {
	Sheets []Sheet
	Active int // index into Sheets of the workbook's active tab
}

// SheetNames returns the sheet names in workbook order.
func (m WorkbookModel) SheetNames() []string {
	names := make([]string, 0, len(m.Sheets))
	for _, s := range m.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Sheet returns the sheet called name, or the active sheet when name is empty.
func (m WorkbookModel) Sheet(name string) (Sheet, error) {
	if name == "" {
		if m.Active < 0 || m.Active >= len(m.Sheets) {
			return Sheet{}, fmt.Errorf("workbook has no active sheet")
		}
		return m.Sheets[m.Active], nil
	}
	for _, s := range m.Sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return Sheet{}, fmt.Errorf("sheet %q not found", name)
}
