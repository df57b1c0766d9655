package seeder

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter prints loader progress. A nil *Reporter discards everything.
type Reporter struct {
	out     io.Writer
	step    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	info    *color.Color
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		step:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgWhite),
	}
}

func (r *Reporter) line(c *color.Color, format string, args ...interface{}) {
	if r == nil || r.out == nil {
		return
	}
	c.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Step(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.line(r.step, format, args...)
}

func (r *Reporter) Success(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.line(r.success, "✅ "+format, args...)
}

func (r *Reporter) Warn(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.line(r.warn, "⚠️  "+format, args...)
}

func (r *Reporter) Error(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.line(r.fail, "❌ "+format, args...)
}

func (r *Reporter) Info(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.line(r.info, format, args...)
}

// Progress reports done/total inside a long phase.
func (r *Reporter) Progress(done, total int, what string) {
	if r == nil {
		return
	}
	r.line(r.info, "   📝 %d/%d %s...", done, total, what)
}

func (r *Reporter) Rule() {
	if r == nil || r.out == nil {
		return
	}
	fmt.Fprintln(r.out, strings.Repeat("=", 70))
}

func (r *Reporter) Blank() {
	if r == nil || r.out == nil {
		return
	}
	fmt.Fprintln(r.out)
}
