//go:build !nogui

package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/aerissecure/worddeck"
	"github.com/aerissecure/worddeck/internal/config"
	"github.com/aerissecure/worddeck/internal/session"
)

// Run shows the form and blocks until the window is closed.
func Run(cfg *config.Config, log *slog.Logger) error {
	l := log.With(slog.String("component", "ui"))
	l.Info("starting UI")

	opts := worddeck.Options{
		WrapThreshold: cfg.Layout.WrapThreshold,
		ProgressEvery: cfg.Layout.ProgressEvery,
	}
	f := &form{
		sess:    session.New(cfg.Output, opts, log),
		preview: session.NewPreviewer(cfg.Template.Name, session.SystemViewer{}, log),
		log:     l,
	}

	fyneApp := app.New()
	fyneApp.Lifecycle().SetOnStopped(func() {
		if err := f.preview.Close(); err != nil {
			l.Warn("remove template copies", slog.Any("err", err))
		}
	})

	f.w = fyneApp.NewWindow("单词PPT生成器")
	f.w.Resize(fyne.NewSize(800, 550))
	f.w.SetContent(fynetooltip.AddWindowToolTipLayer(f.build(), f.w.Canvas()))
	f.sync()

	f.w.ShowAndRun()
	return nil
}

type form struct {
	sess    *session.Session
	preview *session.Previewer
	log     *slog.Logger
	w       fyne.Window

	inputEntry   *widget.Entry
	browseInput  *ttwidget.Button
	sheetSelect  *widget.Select
	refreshBtn   *ttwidget.Button
	outputEntry  *widget.Entry
	browseOutput *ttwidget.Button
	templateBtn  *ttwidget.Button
	generateBtn  *ttwidget.Button
	status       *widget.Label

	// set while sync writes widgets, so their change callbacks stay quiet
	syncing bool
}

func (f *form) build() fyne.CanvasObject {
	f.inputEntry = widget.NewEntry()
	f.inputEntry.SetPlaceHolder("选择Excel文件")
	f.inputEntry.OnSubmitted = func(path string) {
		f.selectInput(path)
	}
	f.browseInput = ttwidget.NewButton("浏览", f.chooseInput)
	f.browseInput.SetToolTip("选择包含单词表的Excel文件")

	f.sheetSelect = widget.NewSelect(nil, func(name string) {
		if f.syncing {
			return
		}
		if err := f.sess.SelectSheet(name); err != nil {
			dialog.ShowError(err, f.w)
		}
		f.sync()
	})
	f.refreshBtn = ttwidget.NewButton("刷新表格", f.refreshSheets)
	f.refreshBtn.SetToolTip("重新读取文件中的表格列表")

	f.outputEntry = widget.NewEntry()
	f.outputEntry.OnChanged = func(path string) {
		if f.syncing {
			return
		}
		if err := f.sess.SetOutput(path); err != nil {
			return
		}
		f.status.SetText(f.sess.Status())
	}
	f.browseOutput = ttwidget.NewButton("浏览", f.chooseOutput)
	f.browseOutput.SetToolTip("选择PPT保存位置")

	f.templateBtn = ttwidget.NewButton("打开模板", f.openTemplate)
	f.templateBtn.SetToolTip("以副本方式打开，关闭后自动删除")
	f.generateBtn = ttwidget.NewButton("生成PPT", f.generate)
	f.generateBtn.Importance = widget.HighImportance
	f.generateBtn.SetToolTip("每个单词生成一张幻灯片")

	f.status = widget.NewLabel("")

	body := container.NewVBox(
		widget.NewCard("输入文件", "", container.NewBorder(nil, nil, nil, f.browseInput, f.inputEntry)),
		widget.NewCard("表格选择", "", container.NewBorder(nil, nil, nil, f.refreshBtn, f.sheetSelect)),
		widget.NewCard("输出文件", "", container.NewBorder(nil, nil, nil, f.browseOutput, f.outputEntry)),
		widget.NewCard("表格模板", "", container.NewBorder(nil, nil, nil, f.templateBtn,
			widget.NewLabel("点击右侧按钮打开示例表格模板，了解正确的表格格式"))),
		f.generateBtn,
	)
	return container.NewBorder(nil, container.NewVBox(widget.NewSeparator(), f.status), nil, nil, body)
}

// sync copies session state into the widgets.
func (f *form) sync() {
	f.syncing = true
	defer func() { f.syncing = false }()

	f.inputEntry.SetText(f.sess.Input())

	f.sheetSelect.Options = f.sess.Sheets()
	f.sheetSelect.Selected = f.sess.Sheet()
	if f.sess.State() >= session.StateSheetsLoaded {
		f.sheetSelect.Enable()
		f.refreshBtn.Enable()
	} else {
		f.sheetSelect.Disable()
		f.refreshBtn.Disable()
	}
	f.sheetSelect.Refresh()

	if f.outputEntry.Text != f.sess.Output() {
		f.outputEntry.SetText(f.sess.Output())
	}
	f.status.SetText(f.sess.Status())
}

func (f *form) chooseInput() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.w)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		f.selectInput(path)
	}, f.w)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".xlsm"}))
	d.Show()
}

func (f *form) selectInput(path string) {
	if err := f.sess.SelectInput(path); err != nil {
		f.log.Error("load workbook", slog.String("path", path), slog.Any("err", err))
		dialog.ShowError(fmt.Errorf("加载文件失败: %w", err), f.w)
	}
	f.sync()
}

func (f *form) refreshSheets() {
	if err := f.sess.RefreshSheets(); err != nil {
		if errors.Is(err, session.ErrNoInput) {
			dialog.ShowInformation("警告", err.Error(), f.w)
		} else {
			dialog.ShowError(fmt.Errorf("刷新表格失败: %w", err), f.w)
		}
	}
	f.sync()
}

func (f *form) chooseOutput() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.w)
			return
		}
		if wc == nil {
			return
		}
		// the dialog creates an empty file; the deck replaces it on save
		path := wc.URI().Path()
		wc.Close()
		if filepath.Ext(path) == "" {
			path += ".pptx"
		}
		if err := f.sess.SetOutput(path); err != nil {
			dialog.ShowInformation("警告", err.Error(), f.w)
			return
		}
		f.sync()
	}, f.w)
	d.SetFileName(filepath.Base(f.sess.Output()))
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pptx"}))
	d.Show()
}

// generate builds the deck off the UI goroutine so the status line repaints;
// the form's inputs stay disabled until the run finishes.
func (f *form) generate() {
	f.setBusy(true)
	f.status.SetText("正在生成PPT...")
	go func() {
		n, err := f.sess.Generate()
		fyne.Do(func() {
			f.setBusy(false)
			f.sync()
			f.report(n, err)
		})
	}()
}

func (f *form) setBusy(busy bool) {
	for _, w := range []fyne.Disableable{f.inputEntry, f.browseInput, f.outputEntry, f.browseOutput, f.generateBtn} {
		if busy {
			w.Disable()
		} else {
			w.Enable()
		}
	}
	if busy {
		f.sheetSelect.Disable()
		f.refreshBtn.Disable()
	}
}

func (f *form) report(n int, err error) {
	switch {
	case errors.Is(err, session.ErrNoInput), errors.Is(err, session.ErrNoSheet),
		errors.Is(err, session.ErrNoOutput), errors.Is(err, session.ErrNoData),
		errors.Is(err, session.ErrBusy):
		dialog.ShowInformation("警告", err.Error(), f.w)
	case err != nil:
		f.log.Error("generate", slog.Any("err", err))
		dialog.ShowError(fmt.Errorf("生成PPT失败: %w", err), f.w)
	default:
		dialog.ShowInformation("成功",
			fmt.Sprintf("PPT生成成功！\n共处理 %d 个单词\n输出文件: %s", n, f.sess.Output()), f.w)
	}
}

// openTemplate waits for the viewer off the UI goroutine so the window keeps
// repainting; only the status line and button are touched on completion.
func (f *form) openTemplate() {
	f.templateBtn.Disable()
	go func() {
		synthesized, err := f.preview.Preview()
		fyne.Do(func() {
			f.templateBtn.Enable()
			switch {
			case err != nil:
				f.log.Error("open template", slog.Any("err", err))
				dialog.ShowError(fmt.Errorf("打开模板失败: %w", err), f.w)
				f.sess.SetStatus("打开模板失败")
			case synthesized:
				f.sess.SetStatus("已创建并打开表格模板")
			default:
				f.sess.SetStatus("已打开表格模板")
			}
			f.status.SetText(f.sess.Status())
		})
	}()
}
