// Package session holds the interactive form's state and actions independent of
// any widget toolkit.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/aerissecure/worddeck"
	"github.com/aerissecure/worddeck/xlsx"
)

// Precondition failures of Generate and RefreshSheets. Their text is shown to
// the user as is.
var (
	ErrNoInput  = errors.New("请先选择输入文件")
	ErrNoSheet  = errors.New("请选择表格")
	ErrNoOutput = errors.New("请设置输出文件路径")
	ErrNoData   = errors.New("PPT生成失败，可能是因为表格中没有数据")
	ErrBusy     = errors.New("正在生成PPT，请稍候")
)

// State is the form's position in its workflow.
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateSheetsLoaded
	StateReady
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateSheetsLoaded:
		return "sheets_loaded"
	case StateReady:
		return "ready_to_generate"
	case StateGenerating:
		return "generating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is the result of the last Generate call.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// SheetLister lists the sheets of a workbook.
type SheetLister func(path string) ([]string, error)

// Generator runs the load, build and save pipeline.
type Generator func(input, output string, opts worddeck.Options) (int, error)

// Session tracks one user's form: chosen input, sheet and output, and the
// status line. Generate may run on its own goroutine; while it does, the
// selection methods return ErrBusy and the getters report the running state.
type Session struct {
	mu      sync.Mutex
	state   State
	outcome Outcome
	input   string
	sheets  []string
	sheet   string
	output  string
	status  string

	opts       worddeck.Options
	listSheets SheetLister
	generate   Generator
	log        *slog.Logger
}

// New returns an idle session with output preset to defaultOutput. opts is
// passed to every generation with Sheet replaced by the selected sheet.
func New(defaultOutput string, opts worddeck.Options, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		state:      StateIdle,
		output:     defaultOutput,
		status:     "就绪",
		opts:       opts,
		listSheets: xlsx.SheetNames,
		generate:   worddeck.Generate,
		log:        log.With(slog.String("component", "session")),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) Sheets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sheets)
}

func (s *Session) Sheet() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheet
}

func (s *Session) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) SetStatus(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = v
}

// SelectInput records the chosen workbook and loads its sheet list. An empty
// path (cancelled dialog) is ignored.
func (s *Session) SelectInput(path string) error {
	if path == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return ErrBusy
	}
	s.input = path
	s.state = StateFileSelected
	s.status = fmt.Sprintf("已选择文件: %s", filepath.Base(path))
	s.log.Info("input selected", slog.String("path", path))

	n, err := s.loadSheets()
	if err != nil {
		s.status = "加载文件失败"
		return err
	}
	s.status = fmt.Sprintf("已加载文件: %s，包含 %d 个表格", filepath.Base(path), n)
	return nil
}

// RefreshSheets reloads the sheet list of the selected workbook.
func (s *Session) RefreshSheets() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return ErrBusy
	}
	if s.input == "" {
		return ErrNoInput
	}
	n, err := s.loadSheets()
	if err != nil {
		s.status = "刷新表格失败"
		return err
	}
	s.status = fmt.Sprintf("已刷新表格列表，包含 %d 个表格", n)
	return nil
}

func (s *Session) loadSheets() (int, error) {
	names, err := s.listSheets(s.input)
	if err != nil {
		s.log.Warn("list sheets", slog.String("path", s.input), slog.Any("err", err))
		s.sheets = nil
		s.sheet = ""
		s.state = StateFileSelected
		return 0, err
	}
	s.sheets = names
	s.sheet = ""
	if len(names) > 0 {
		s.sheet = names[0]
	}
	s.state = StateSheetsLoaded
	s.advance()
	return len(names), nil
}

// SelectSheet picks the sheet to generate from.
func (s *Session) SelectSheet(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return ErrBusy
	}
	if s.state < StateSheetsLoaded {
		return ErrNoInput
	}
	if name != "" && !slices.Contains(s.sheets, name) {
		return fmt.Errorf("sheet %q not in %s", name, filepath.Base(s.input))
	}
	s.sheet = name
	s.advance()
	return nil
}

// SetOutput records the deck path. An empty path clears it.
func (s *Session) SetOutput(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return ErrBusy
	}
	s.output = path
	if path != "" {
		s.status = fmt.Sprintf("已设置输出文件: %s", filepath.Base(path))
	}
	s.advance()
	return nil
}

// advance moves between sheets_loaded and ready_to_generate as the sheet and
// output selections change.
func (s *Session) advance() {
	switch s.state {
	case StateSheetsLoaded:
		if s.sheet != "" && s.output != "" {
			s.state = StateReady
		}
	case StateReady:
		if s.sheet == "" || s.output == "" {
			s.state = StateSheetsLoaded
		}
	}
}

// Generate builds the deck from the selected sheet. Missing selections return
// ErrNoInput, ErrNoSheet or ErrNoOutput without changing state. After the run
// the session is back in ready_to_generate whatever the outcome; an empty
// sheet counts as a failure and returns ErrNoData.
//
// The session lock is not held while the deck is built, so the status line and
// state can be read from another goroutine during the run.
func (s *Session) Generate() (int, error) {
	s.mu.Lock()
	switch {
	case s.state == StateGenerating:
		s.mu.Unlock()
		return 0, ErrBusy
	case s.input == "":
		s.mu.Unlock()
		return 0, ErrNoInput
	case s.sheet == "":
		s.mu.Unlock()
		return 0, ErrNoSheet
	case s.output == "":
		s.mu.Unlock()
		return 0, ErrNoOutput
	case s.state != StateReady:
		state := s.state
		s.mu.Unlock()
		return 0, fmt.Errorf("cannot generate in state %s", state)
	}

	s.state = StateGenerating
	s.status = "正在生成PPT..."
	input, output := s.input, s.output
	opts := s.opts
	opts.Sheet = s.sheet
	opts.Logger = s.log
	s.mu.Unlock()

	n, err := s.generate(input, output, opts)
	if errors.Is(err, worddeck.ErrNoRecords) || (err == nil && n == 0) {
		err = ErrNoData
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateReady
	if err != nil {
		s.outcome = OutcomeFailure
		s.status = fmt.Sprintf("生成PPT失败: %v", err)
		return n, err
	}
	s.outcome = OutcomeSuccess
	s.status = fmt.Sprintf("PPT生成成功，共处理 %d 个单词", n)
	return n, nil
}
