package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color scheme
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)
)

// InitColors applies the color mode (auto, always, never) and the NO_COLOR
// and TERM=dumb conventions.
func InitColors(mode string) {
	switch mode {
	case "never":
		color.NoColor = true
		return
	case "always":
		color.NoColor = false
		return
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// Printer writes user-facing status lines. Out receives progress and
// success lines, Err receives warnings and errors.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter creates a Printer; nil writers default to stdout and stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

// Plain prints an uncolored line to Out.
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Success prints a success line
func (p *Printer) Success(format string, args ...interface{}) {
	Success.Fprintf(p.Out, "✅ %s\n", fmt.Sprintf(format, args...))
}

// Info prints an info line
func (p *Printer) Info(format string, args ...interface{}) {
	Info.Fprintf(p.Out, "%s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning line to Err
func (p *Printer) Warning(format string, args ...interface{}) {
	Warning.Fprintf(p.Err, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error line to Err
func (p *Printer) Error(format string, args ...interface{}) {
	Error.Fprintf(p.Err, "%s\n", fmt.Sprintf(format, args...))
}

// Block prints a multi-line block verbatim to Err.
func (p *Printer) Block(text string) {
	fmt.Fprint(p.Err, text)
}
