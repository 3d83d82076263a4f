package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconInfo    = "…"
	IconDebug   = "»"
)

// Logger writes leveled, optionally colored lines.
type Logger struct {
	debug        bool
	colors       bool
	output       io.Writer
	infoColor    *color.Color
	errorColor   *color.Color
	warnColor    *color.Color
	successColor *color.Color
	debugColor   *color.Color
	mutex        sync.Mutex
}

// New creates a logger writing to w. Colors are used only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		debug:        debug,
		colors:       isTerminal(w) && os.Getenv("NO_COLOR") == "",
		output:       w,
		infoColor:    color.New(color.FgCyan),
		errorColor:   color.New(color.FgRed, color.Bold),
		warnColor:    color.New(color.FgYellow, color.Bold),
		successColor: color.New(color.FgGreen, color.Bold),
		debugColor:   color.New(color.Faint, color.FgBlue),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *Logger) write(c *color.Color, icon, level, format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	msg := fmt.Sprintf(format, v...)
	timestamp := time.Now().Format("15:04:05.000")
	if l.colors {
		c.Fprintf(l.output, "%s %s [%s] %s\n", icon, timestamp, level, msg)
		return
	}
	fmt.Fprintf(l.output, "%s [%s] %s\n", timestamp, level, msg)
}

// Debugf prints when debug output is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.write(l.debugColor, IconDebug, "DEBUG", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.write(l.infoColor, IconInfo, "INFO", format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(l.warnColor, IconWarning, "WARN", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(l.errorColor, IconError, "ERROR", format, v...)
}

func (l *Logger) Successf(format string, v ...interface{}) {
	l.write(l.successColor, IconSuccess, "SUCCESS", format, v...)
}
