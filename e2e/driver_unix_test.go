//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "gadgetfind_e2e"

const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyCtrlB = "\x02"
	KeyEsc   = "\x1b"
	KeyDown  = "\x1b[B"
	KeyF1    = "\x1bOP"
	KeyQuit  = "q"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

const (
	scrollback   = 1 << 20
	pollInterval = 25 * time.Millisecond
	escDelay     = 100 * time.Millisecond
	typeDelay    = 10 * time.Millisecond
)

// screenLog keeps the last scrollback bytes the app wrote to its terminal
type screenLog struct {
	mu      sync.Mutex
	data    []byte
	next    int
	wrapped bool
}

func (l *screenLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range p {
		l.data[l.next] = b
		l.next++
		if l.next == len(l.data) {
			l.next = 0
			l.wrapped = true
		}
	}
	return len(p), nil
}

func (l *screenLog) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.wrapped {
		return string(l.data[:l.next])
	}
	return string(l.data[l.next:]) + string(l.data[:l.next])
}

func (l *screenLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next = 0
	l.wrapped = false
}

// TUITestFramework runs one gadgetfind process in a pseudo terminal
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string
	screen    *screenLog
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:      t,
		screen: &screenLog{data: make([]byte, scrollback)},
	}
}

// CreateTestWorkspace makes the temp dir that serves as $HOME for the run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "gadgetfind-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir
	return dir, nil
}

func (tf *TUITestFramework) ensureWorkspace() error {
	if tf.workspace != "" {
		return nil
	}
	_, err := tf.CreateTestWorkspace()
	return err
}

// WriteFile writes a fixture under the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if err := tf.ensureWorkspace(); err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0o644)
}

func (tf *TUITestFramework) LogPath() string {
	return filepath.Join(tf.workspace, "gadgetfind.log")
}

// StartApp runs the binary on a 120x40 terminal with $HOME set to the workspace
func (tf *TUITestFramework) StartApp(args ...string) error {
	if err := tf.ensureWorkspace(); err != nil {
		return err
	}

	tf.cmd = exec.Command(binPath, append([]string{"-log", tf.LogPath()}, args...)...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", binPath, err)
	}
	tf.pty = f

	go func() {
		chunk := make([]byte, 8192)
		for {
			n, err := f.Read(chunk)
			if n > 0 {
				_, _ = tf.screen.Write(chunk[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time so each rune arrives as its own key
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(typeDelay)
	}
	return nil
}

func (tf *TUITestFramework) Enter() error { return tf.SendKeys(KeyEnter) }

func (tf *TUITestFramework) Help() error { return tf.SendKeys(KeyF1) }

// PressQuit sends q, which closes the Detail screen or the help pager
func (tf *TUITestFramework) PressQuit() error { return tf.SendKeys(KeyQuit) }

// Quit sends Ctrl+C, which exits from any screen
func (tf *TUITestFramework) Quit() error { return tf.SendKeys(KeyCtrlC) }

// Esc waits out the terminal's escape timeout so the next key is not read as Alt
func (tf *TUITestFramework) Esc() error {
	err := tf.SendKeys(KeyEsc)
	time.Sleep(escDelay)
	return err
}

// Ready waits for the first frame, which always carries the app title
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.seeWithin("gadgetfind", 5*time.Second)
}

// SeePlain reports whether text shows up in the ANSI-stripped output within 3s
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.seeWithin(text, 3*time.Second)
}

func (tf *TUITestFramework) seeWithin(text string, timeout time.Duration) bool {
	return tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout, "") == nil
}

// ResetOutput drops captured output so later waits only see new frames
func (tf *TUITestFramework) ResetOutput() {
	tf.screen.Reset()
}

// WaitForE polls the raw output until pred holds. On timeout the error
// carries failMsg and the last 4KiB of plain output.
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for !pred(tf.screen.String()) {
		if time.Now().After(deadline) {
			return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail(tf.SnapshotPlain(), 4096))
		}
		time.Sleep(pollInterval)
	}
	return nil
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.screen.String(), "")
}

// DumpTailOnFail saves the last n bytes of plain output under t's temp dir
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	t.Helper()
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(tail(tf.SnapshotPlain(), n)), 0o644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the terminal, kills the process and removes the workspace
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
