package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/aerissecure/worddeck/vocab"
	"github.com/aerissecure/worddeck/xlsx"
)

// Viewer shows a file to the user.
type Viewer interface {
	// Open displays path and blocks until the viewer exits. waited is false
	// when the launcher returned before the viewer closed, in which case the
	// file must outlive the call.
	Open(path string) (waited bool, err error)
}

// Previewer opens a disposable copy of the sample template so the user can see
// the expected columns without risking edits to the original.
type Previewer struct {
	Name       string   // template file name
	SearchDirs []string // checked in order for an existing template
	TempDir    string   // where copies go; empty means os.TempDir()
	Viewer     Viewer
	Logger     *slog.Logger

	mu      sync.Mutex
	pending []string // copies whose viewer did not wait, removed by Close
}

// NewPreviewer looks for name next to the executable, then in the working
// directory.
func NewPreviewer(name string, viewer Viewer, log *slog.Logger) *Previewer {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return &Previewer{Name: name, SearchDirs: dirs, Viewer: viewer, Logger: log}
}

// Preview copies the template to a unique temp file, or writes the built-in
// sample there when no template is found, and opens it. The copy is deleted
// once the viewer exits. synthesized reports whether the built-in sample was
// used. Failures are *vocab.TemplateError.
func (p *Previewer) Preview() (synthesized bool, err error) {
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}

	tmp := p.tempPath()
	if src, ok := p.locate(); ok {
		log.Debug("copy template", slog.String("src", src), slog.String("dst", tmp))
		if err := copyFile(src, tmp); err != nil {
			os.Remove(tmp)
			return false, &vocab.TemplateError{Op: "copy", Err: err}
		}
	} else {
		log.Debug("synthesize template", slog.String("dst", tmp))
		if err := xlsx.SaveTemplate(tmp); err != nil {
			os.Remove(tmp)
			return true, err
		}
		synthesized = true
	}

	waited, err := p.Viewer.Open(tmp)
	if err != nil {
		os.Remove(tmp)
		return synthesized, &vocab.TemplateError{Op: "open", Err: err}
	}
	if !waited {
		p.mu.Lock()
		p.pending = append(p.pending, tmp)
		p.mu.Unlock()
		return synthesized, nil
	}
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		log.Warn("remove template copy", slog.String("path", tmp), slog.Any("err", err))
	}
	return synthesized, nil
}

// Close removes template copies still held for viewers that did not wait.
func (p *Previewer) Close() error {
	p.mu.Lock()
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	var firstErr error
	for _, path := range pending {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Previewer) locate() (string, bool) {
	for _, dir := range p.SearchDirs {
		path := filepath.Join(dir, p.Name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

func (p *Previewer) tempPath() string {
	dir := p.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	ext := filepath.Ext(p.Name)
	stem := strings.TrimSuffix(p.Name, ext)
	if ext == "" {
		ext = ".xlsx"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, uuid.NewString(), ext))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
