package worddeck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/presentation"
	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/worddeck/vocab"
	"github.com/aerissecure/worddeck/xlsx"
)

func TestGenerate_Template(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, xlsx.TemplateName)
	output := filepath.Join(dir, "words.pptx")
	require.NoError(t, xlsx.SaveTemplate(input))

	var loaded int
	var progress []int
	n, err := Generate(input, output, Options{
		OnLoaded: func(total int) { loaded = total },
		Progress: func(done, total int) { progress = append(progress, done) },
	})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, loaded)
	assert.Equal(t, []int{5}, progress)

	ppt, err := presentation.Open(output)
	require.NoError(t, err)
	slides := ppt.Slides()
	require.Len(t, slides, 5)

	first := slides[0].X().CSld.SpTree.Choice[0].Sp[0]
	require.NotNil(t, first.TxBody)
	require.NotEmpty(t, first.TxBody.P)
	require.NotEmpty(t, first.TxBody.P[0].EG_TextRun)
	assert.Equal(t, "apple", first.TxBody.P[0].EG_TextRun[0].R.T)
}

func TestGenerate_NamedSheet(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, xlsx.TemplateName)
	require.NoError(t, xlsx.SaveTemplate(input))

	n, err := Generate(input, filepath.Join(dir, "out.pptx"), Options{Sheet: xlsx.TemplateSheet})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = Generate(input, filepath.Join(dir, "out2.pptx"), Options{Sheet: "Sheet9"})
	var openErr *vocab.FileOpenError
	assert.True(t, errors.As(err, &openErr))
}

func TestGenerate_MissingColumnWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.xlsx")
	output := filepath.Join(dir, "words.pptx")

	f := excelize.NewFile()
	for i, h := range vocab.RequiredColumns[:5] {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "apple"))
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	built := false
	n, err := Generate(input, output, Options{
		OnLoaded: func(int) { built = true },
	})
	assert.Zero(t, n)
	assert.False(t, built)

	var mcErr *vocab.MissingColumnsError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, []string{vocab.ColumnDefinition}, mcErr.Columns)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_NoDataRows(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.xlsx")
	output := filepath.Join(dir, "words.pptx")

	f := excelize.NewFile()
	for i, h := range vocab.RequiredColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	n, err := Generate(input, output, Options{})
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.NoFileExists(t, output)
}

func TestGenerate_ExcelSavedWorkbook(t *testing.T) {
	output := filepath.Join(t.TempDir(), "lesson.pptx")

	n, err := Generate(filepath.Join("xlsx", "testdata", "lesson_excel.xlsx"), output, Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	ppt, err := presentation.Open(output)
	require.NoError(t, err)
	require.Len(t, ppt.Slides(), 5)
	first := ppt.Slides()[0].X().CSld.SpTree.Choice[0].Sp[0]
	assert.Equal(t, "apple", first.TxBody.P[0].EG_TextRun[0].R.T)
}

func TestGenerate_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "words.pptx"), Options{})
	var openErr *vocab.FileOpenError
	assert.True(t, errors.As(err, &openErr))
}

func TestGenerate_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, xlsx.TemplateName)
	require.NoError(t, xlsx.SaveTemplate(input))

	_, err := Generate(input, filepath.Join(dir, "missing-dir", "words.pptx"), Options{})
	var saveErr *vocab.SaveError
	assert.True(t, errors.As(err, &saveErr))
}
