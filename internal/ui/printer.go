package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Printer writes styled console messages. Info messages are suppressed in
// quiet mode; warnings and errors always print.
type Printer struct {
	out   io.Writer
	err   io.Writer
	quiet bool
}

// NewPrinter creates a printer writing to stdout/stderr.
func NewPrinter(quiet bool) *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr, quiet: quiet}
}

// NewPrinterWithOutput creates a printer with custom writers, for tests.
func NewPrinterWithOutput(out, errOut io.Writer, quiet bool) *Printer {
	return &Printer{out: out, err: errOut, quiet: quiet}
}

// Infof prints a plain informational line unless quiet.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf prints a green success line unless quiet.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Statusf prints a blue status line unless quiet.
func (p *Printer) Statusf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, statusStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints an orange warning line.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.err, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red error line.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.err, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}
