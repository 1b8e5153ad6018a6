package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer handles formatted status output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a Printer writing to stdout/stderr
func NewPrinter(useColors bool) *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: useColors}
}

// NewPrinterWithWriters creates a Printer with custom writers
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Successf prints a success line
func (p *Printer) Successf(format string, a ...interface{}) {
	p.writeLine(p.out, color.FgGreen, "✓", format, a...)
}

// Warnf prints a warning line
func (p *Printer) Warnf(format string, a ...interface{}) {
	p.writeLine(p.err, color.FgYellow, "!", format, a...)
}

// Errorf prints an error line
func (p *Printer) Errorf(format string, a ...interface{}) {
	p.writeLine(p.err, color.FgRed, "✗", format, a...)
}

func (p *Printer) writeLine(w io.Writer, c color.Attribute, mark, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if p.useColors {
		// The global auto-detection would strip colors off non-terminal
		// writers; useColors already carries the --no-color decision.
		cc := color.New(c)
		cc.EnableColor()
		mark = cc.Sprint(mark)
	}
	fmt.Fprintf(w, "%s %s\n", mark, msg)
}
