// Package vocab holds the vocabulary record shared by the spreadsheet reader and
// the deck builder, plus the error types every stage reports.
package vocab

// Column headers a vocabulary sheet must carry.
const (
	ColumnWord               = "英文单词"
	ColumnPhonetic           = "英文音标"
	ColumnMorphology         = "词根词缀"
	ColumnExample            = "例句"
	ColumnExampleTranslation = "例句释义"
	ColumnDefinition         = "单词释义"
)

// RequiredColumns lists the headers in the order the template writes them.
var RequiredColumns = []string{
	ColumnWord,
	ColumnPhonetic,
	ColumnMorphology,
	ColumnExample,
	ColumnExampleTranslation,
	ColumnDefinition,
}

// Record maps a header name to the cell value in one data row.
// Empty cells are stored as "".
type Record map[string]string

func (r Record) Word() string               { return r[ColumnWord] }
func (r Record) Phonetic() string           { return r[ColumnPhonetic] }
func (r Record) Morphology() string         { return r[ColumnMorphology] }
func (r Record) Example() string            { return r[ColumnExample] }
func (r Record) ExampleTranslation() string { return r[ColumnExampleTranslation] }
func (r Record) Definition() string         { return r[ColumnDefinition] }

// MissingColumns returns the required columns absent from headers, in
// RequiredColumns order. Header order and extra headers do not matter.
func MissingColumns(headers []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
