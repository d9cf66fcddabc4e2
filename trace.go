package logikus

import (
	"fmt"
	"io"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/logikus/syntax"
)

// traceWidth is the column width trace lines are reflowed to before being
// written out, so a deeply-nested clause attempt or a long write/N result
// doesn't run off the side of a terminal.
const traceWidth = 100

// TraceListener writes a human-readable line to w for every clause attempt
// and every write/N side effect a Query performs, reflowing each line with
// rosed so it stays readable regardless of how long the goal or bindings
// text involved turns out to be.
type TraceListener struct {
	w io.Writer
}

// NewTraceListener returns a TraceListener writing to w.
func NewTraceListener(w io.Writer) *TraceListener {
	return &TraceListener{w: w}
}

func (t *TraceListener) ClauseAttempt(goal *syntax.Structure, head *syntax.Structure, ok bool) {
	verdict := "failed"
	if ok {
		verdict = "proved"
	}
	line := fmt.Sprintf("%s %s against %s", verdict, goal.String(), head.String())
	t.emit(line)
}

func (t *TraceListener) Write(s string) {
	t.emit("write: " + s)
}

func (t *TraceListener) emit(line string) {
	wrapped := rosed.Edit(line).Wrap(traceWidth).String()
	fmt.Fprintln(t.w, wrapped)
}
