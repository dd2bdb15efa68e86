package tracelog

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledContextIsNoop(t *testing.T) {
	c := New(false)
	c.Progressf("hello")
	c.StartTimer(PhaseSweep)
	c.StopTimer(PhaseSweep)

	var buf bytes.Buffer
	c.DumpLog(&buf)
	assert.Empty(t, buf.String())
	assert.Equal(t, time.Duration(0), c.AccumulatedTime(PhaseSweep))
}

func TestEnabledContextLogsAndTimes(t *testing.T) {
	c := New(true)
	c.Progressf("parsed %d polygons", 3)
	c.Warningf("dropped extra P in DS block")

	var buf bytes.Buffer
	c.DumpLog(&buf)
	assert.Contains(t, buf.String(), "parsed 3 polygons")
	assert.Contains(t, buf.String(), "[warning]")

	c.StartTimer(PhaseSweep)
	time.Sleep(time.Millisecond)
	c.StopTimer(PhaseSweep)
	assert.Greater(t, c.AccumulatedTime(PhaseSweep), time.Duration(0))
}
