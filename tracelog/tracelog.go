// Package tracelog provides the optional logging and per-phase timing used
// by the CLI driver to report progress through a layer-arithmetic run: CIF
// parsing, segment-tree construction, the sweep, contour reconstruction and
// CIF writing.
//
// It is modeled on the build-time logging Context found throughout the
// teacher's build pipeline: a Context accumulates messages by category and
// accumulates elapsed time per named phase, and does nothing at all when
// disabled so call sites never need to guard every call with an if.
package tracelog

import (
	"fmt"
	"io"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	Progress Category = iota
	Warning
	Error
)

func (c Category) String() string {
	switch c {
	case Progress:
		return "progress"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Phase names one of the timed stages of a run.
type Phase int

const (
	PhaseParse Phase = iota
	PhaseBuildTree
	PhaseSweep
	PhaseReconstruct
	PhaseWrite
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseParse:
		return "Parse CIF"
	case PhaseBuildTree:
		return "Build segment tree"
	case PhaseSweep:
		return "Sweep"
	case PhaseReconstruct:
		return "Reconstruct contours"
	case PhaseWrite:
		return "Write CIF"
	}
	return "unknown phase"
}

type message struct {
	category Category
	text     string
}

// Context accumulates log messages and phase timers for a single run. The
// zero value is not usable; create one with New.
type Context struct {
	enabled  bool
	messages []message

	start [numPhases]time.Time
	acc   [numPhases]time.Duration
	armed [numPhases]bool
}

// New returns a Context. When enabled is false, every logging and timing
// method is a no-op.
func New(enabled bool) *Context {
	return &Context{enabled: enabled}
}

func (c *Context) log(cat Category, format string, v ...interface{}) {
	if !c.enabled {
		return
	}
	c.messages = append(c.messages, message{category: cat, text: fmt.Sprintf(format, v...)})
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, v ...interface{}) { c.log(Progress, format, v...) }

// Warningf logs a warning message.
func (c *Context) Warningf(format string, v ...interface{}) { c.log(Warning, format, v...) }

// Errorf logs an error message.
func (c *Context) Errorf(format string, v ...interface{}) { c.log(Error, format, v...) }

// StartTimer starts the timer for phase. Calling it again before StopTimer
// restarts the interval without affecting previously accumulated time.
func (c *Context) StartTimer(phase Phase) {
	if !c.enabled {
		return
	}
	c.start[phase] = time.Now()
	c.armed[phase] = true
}

// StopTimer stops the timer for phase and adds the elapsed interval to its
// accumulated total. It is a no-op if the timer was never started.
func (c *Context) StopTimer(phase Phase) {
	if !c.enabled || !c.armed[phase] {
		return
	}
	c.acc[phase] += time.Since(c.start[phase])
	c.armed[phase] = false
}

// AccumulatedTime returns the total time spent in phase across all
// StartTimer/StopTimer pairs, or 0 if the context is disabled or the phase
// was never timed.
func (c *Context) AccumulatedTime(phase Phase) time.Duration {
	if !c.enabled {
		return 0
	}
	return c.acc[phase]
}

// DumpLog writes every accumulated message to w, one per line, in the order
// they were logged.
func (c *Context) DumpLog(w io.Writer) {
	for _, m := range c.messages {
		fmt.Fprintf(w, "[%s] %s\n", m.category, m.text)
	}
}

// DumpTimes writes a per-phase timing table to w, in the same
// "- label\t\ttime\t(pct%)" shape the teacher's build pipeline reports.
func (c *Context) DumpTimes(w io.Writer, total time.Duration) {
	if !c.enabled || total <= 0 {
		return
	}
	pc := 100.0 / float64(total)
	fmt.Fprintln(w, "Build Times")
	for p := Phase(0); p < numPhases; p++ {
		t := c.acc[p]
		if t == 0 {
			continue
		}
		fmt.Fprintf(w, "- %s\t\t%.2fms\t(%.1f%%)\n", p, float64(t)/float64(time.Millisecond), float64(t)*pc)
	}
	fmt.Fprintf(w, "=== TOTAL:\t%v\n", total)
}
