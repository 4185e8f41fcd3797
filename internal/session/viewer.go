package session

import (
	"os/exec"
	"runtime"
)

// SystemViewer opens files with the desktop's default application.
type SystemViewer struct{}

// Open launches the default application for path. On Windows and macOS it
// waits for the application to exit; xdg-open cannot, so waited is false there.
func (SystemViewer) Open(path string) (bool, error) {
	cmd, waits := viewerCommand(runtime.GOOS, path)
	if err := cmd.Run(); err != nil {
		return false, err
	}
	return waits, nil
}

func viewerCommand(goos, path string) (*exec.Cmd, bool) {
	switch goos {
	case "windows":
		// the empty argument is start's window title
		return exec.Command("cmd", "/c", "start", "/wait", "", path), true
	case "darwin":
		return exec.Command("open", "-W", path), true
	default:
		return exec.Command("xdg-open", path), false
	}
}
