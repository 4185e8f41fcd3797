package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/worddeck/vocab"
)

const (
	// TemplateName is the file name the sample template is shipped and looked up under.
	TemplateName = "单词表模板.xlsx"
	// TemplateSheet is the name of the single sheet in the sample template.
	TemplateSheet = "单词表"

	templateColWidth = 20
)

// SampleRows are the example records written below the template header, in
// RequiredColumns order.
var SampleRows = [][]string{
	{"apple", "/ˈæpl/", "a-pple", "I eat an apple every day.", "我每天吃一个苹果。", "苹果"},
	{"banana", "/bəˈnɑːnə/", "ban-ana", "Bananas are yellow.", "香蕉是黄色的。", "香蕉"},
	{"cat", "/kæt/", "cat", "The cat is sleeping.", "猫在睡觉。", "猫"},
	{"dog", "/dɒɡ/", "dog", "Dogs are loyal animals.", "狗是忠诚的动物。", "狗"},
	{"elephant", "/ˈelɪfənt/", "ele-ph-ant", "Elephants have long trunks.", "大象有长长的鼻子。", "大象"},
}

// NewTemplate builds the sample workbook in memory. The caller owns the file
// and must Close it.
func NewTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		f.Close()
		return nil, err
	}

	rows := append([][]string{vocab.RequiredColumns}, SampleRows...)
	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(TemplateSheet, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(vocab.RequiredColumns))
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(TemplateSheet, "A", lastCol, templateColWidth); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteTemplate writes the sample workbook to w.
func WriteTemplate(w io.Writer) error {
	f, err := NewTemplate()
	if err != nil {
		return &vocab.TemplateError{Op: "create", Err: err}
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return &vocab.TemplateError{Op: "create", Err: err}
	}
	return nil
}

// SaveTemplate writes the sample workbook to path.
func SaveTemplate(path string) error {
	f, err := NewTemplate()
	if err != nil {
		return &vocab.TemplateError{Op: "create", Err: err}
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return &vocab.TemplateError{Op: "create", Err: err}
	}
	return nil
}
