package xlsx

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/worddeck/vocab"
)

// writeSheet saves a single-sheet workbook whose rows are written from A1.
// A nil row leaves that sheet row empty.
func writeSheet(t *testing.T, sheetName string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheetName != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	}
	for r, values := range rows {
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func headerRow() []any {
	row := make([]any, 0, len(vocab.RequiredColumns))
	for _, h := range vocab.RequiredColumns {
		row = append(row, h)
	}
	return row
}

func TestLoadRecords_Template(t *testing.T) {
	path := filepath.Join(t.TempDir(), TemplateName)
	require.NoError(t, SaveTemplate(path))

	records, err := LoadRecords(path, "")
	require.NoError(t, err)
	require.Len(t, records, len(SampleRows))

	for i, rec := range records {
		for c, col := range vocab.RequiredColumns {
			assert.Equal(t, SampleRows[i][c], rec[col], "row %d column %s", i+2, col)
		}
	}
	assert.Equal(t, "apple", records[0].Word())
	assert.Equal(t, "大象", records[4].Definition())
}

func TestLoadRecords_NamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), TemplateName)
	require.NoError(t, SaveTemplate(path))

	records, err := LoadRecords(path, TemplateSheet)
	require.NoError(t, err)
	assert.Len(t, records, 5)

	_, err = LoadRecords(path, "不存在")
	var openErr *vocab.FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, "不存在", openErr.Sheet)
}

func TestLoadRecords_HeaderOrderAndExtras(t *testing.T) {
	path := writeSheet(t, "Sheet1", [][]any{
		{"备注", vocab.ColumnDefinition, vocab.ColumnWord, vocab.ColumnPhonetic, vocab.ColumnMorphology, vocab.ColumnExample, vocab.ColumnExampleTranslation},
		{"note", "猫", "cat", "/kæt/", "cat", "The cat is sleeping.", "猫在睡觉。"},
	})

	records, err := LoadRecords(path, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "cat", records[0].Word())
	assert.Equal(t, "猫", records[0].Definition())
	assert.Equal(t, "note", records[0]["备注"])
}

func TestLoadRecords_EmptyCellsAndNumbers(t *testing.T) {
	path := writeSheet(t, "Sheet1", [][]any{
		headerRow(),
		{"dog", nil, "dog", "Dogs are loyal animals.", nil, nil},
		{42, "/ˈfɔːti tuː/"},
	})

	records, err := LoadRecords(path, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "dog", records[0].Word())
	v, ok := records[0][vocab.ColumnPhonetic]
	assert.True(t, ok, "empty cell must still be present in the record")
	assert.Empty(t, v)
	assert.Empty(t, records[0].Definition())

	assert.Equal(t, "42", records[1].Word())
	assert.Empty(t, records[1].Example())
}

func TestLoadRecords_SparseRowsKeepOrder(t *testing.T) {
	path := writeSheet(t, "Sheet1", [][]any{
		headerRow(),
		{"apple"},
		nil,
		{"cat"},
	})

	records, err := LoadRecords(path, "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "apple", records[0].Word())
	assert.Empty(t, records[1].Word())
	assert.Equal(t, "cat", records[2].Word())
}

func TestLoadRecords_MissingColumns(t *testing.T) {
	path := writeSheet(t, "单词表", [][]any{
		{vocab.ColumnWord, vocab.ColumnPhonetic, vocab.ColumnExample},
		{"apple", "/ˈæpl/", "I eat an apple every day."},
	})

	records, err := LoadRecords(path, "")
	assert.Nil(t, records)

	var mcErr *vocab.MissingColumnsError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, "单词表", mcErr.Sheet)
	assert.Equal(t, []string{vocab.ColumnMorphology, vocab.ColumnExampleTranslation, vocab.ColumnDefinition}, mcErr.Columns)
}

func TestLoadRecords_EmptySheet(t *testing.T) {
	path := writeSheet(t, "Sheet1", nil)

	_, err := LoadRecords(path, "")
	var mcErr *vocab.MissingColumnsError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, vocab.RequiredColumns, mcErr.Columns)
}

func TestLoadRecords_Unreadable(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRecords(filepath.Join(dir, "missing.xlsx"), "")
	var openErr *vocab.FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.ErrorIs(t, err, os.ErrNotExist)

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a zip archive"), 0o644))
	_, err = LoadRecords(corrupt, "")
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, corrupt, openErr.Path)
}

func TestSheetNames(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("第二课")
	require.NoError(t, err)
	_, err = f.NewSheet("第三课")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lessons.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "第二课", "第三课"}, names)
}

func TestRow_Cell(t *testing.T) {
	r := Row{Number: 2, Cells: []string{"a", "", "c"}}
	assert.Equal(t, "a", r.Cell(0))
	assert.Equal(t, "", r.Cell(1))
	assert.Equal(t, "c", r.Cell(2))
	assert.Equal(t, "", r.Cell(3))
	assert.Equal(t, "", r.Cell(-1))
}

func TestWorkbookModel_Sheet(t *testing.T) {
	m := WorkbookModel{Sheets: []Sheet{{Name: "a"}, {Name: "b"}}, Active: 1}

	s, err := m.Sheet("")
	require.NoError(t, err)
	assert.Equal(t, "b", s.Name)

	s, err = m.Sheet("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name)

	_, err = m.Sheet("c")
	assert.Error(t, err)

	_, err = WorkbookModel{}.Sheet("")
	assert.Error(t, err)
}

const excelFixture = "testdata/lesson_excel.xlsx"

func TestLoadRecords_ExcelSaved(t *testing.T) {
	records, err := LoadRecords(excelFixture, "")
	require.NoError(t, err)
	require.Len(t, records, 5)

	apple := records[0]
	assert.Equal(t, "apple", apple.Word())
	assert.Equal(t, "/ˈæpl/", apple.Phonetic())
	assert.Equal(t, "n. 苹果", apple.Definition())
	assert.Equal(t, "a-pple", apple.Morphology())
	assert.Equal(t, "I eat an apple every day.", apple.Example())
	assert.Equal(t, "我每天吃一个苹果。", apple.ExampleTranslation())
	assert.Equal(t, "水果", apple["备注"])

	// rich text runs are joined
	assert.Equal(t, "Read a book.", records[1].Example())
	// hidden rows are still read
	assert.Equal(t, "cat", records[2].Word())
	// a row missing from the file is an empty record
	assert.Empty(t, records[3].Word())

	dog := records[4]
	assert.Equal(t, "dog", dog.Word())
	assert.Empty(t, dog.Phonetic())
	assert.Empty(t, dog.Morphology())
	assert.Equal(t, "3", dog["备注"])
}

func TestLoadRecords_ExcelSavedNamedSheet(t *testing.T) {
	_, err := LoadRecords(excelFixture, "说明")
	var mcErr *vocab.MissingColumnsError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, "说明", mcErr.Sheet)

	records, err := LoadRecords(excelFixture, "第一课")
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestParseFile_ExcelSaved(t *testing.T) {
	model, err := ParseFile(excelFixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"说明", "第一课"}, model.SheetNames())
	assert.Equal(t, 1, model.Active)

	s := model.Sheets[1]
	assert.Equal(t, 7, s.ColCount)
	require.Len(t, s.Rows, 6)
	for i, r := range s.Rows {
		assert.Equal(t, i+1, r.Number)
	}
	assert.Equal(t, "英文单词", s.Rows[0].Cell(0))
	assert.True(t, s.Rows[3].Hidden)
	assert.False(t, s.Rows[1].Hidden)
	assert.Nil(t, s.Rows[4].Cells)
}

func TestParseFile_Template(t *testing.T) {
	path := filepath.Join(t.TempDir(), TemplateName)
	require.NoError(t, SaveTemplate(path))

	model, err := ParseFile(path)
	require.NoError(t, err)
	s, err := model.Sheet("")
	require.NoError(t, err)
	require.Len(t, s.Rows, len(SampleRows)+1)
	assert.Equal(t, vocab.RequiredColumns, s.Headers())
	assert.Equal(t, "apple", s.Rows[1].Cell(0))
}

func TestParseWorkbookModel_Reader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	model, err := ParseWorkbookModel(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, []string{TemplateSheet}, model.SheetNames())
	assert.Equal(t, "elephant", model.Sheets[0].Rows[5].Cell(0))
}
