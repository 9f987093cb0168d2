package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLoggerInactiveBelowFloorIsNoop checks that a Logger built below the
// Context's severity floor renders nothing, so call sites never need an
// Active() guard before chaining V/Log.
func TestLoggerInactiveBelowFloorIsNoop(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{writer: &buf, level: Debug, active: false}

	l.V("key", 1).Log("should not appear")

	assert.Empty(t, buf.String())
	assert.False(t, l.Active())
}

// TestLoggerRendersTagAndValues checks that an active Logger's rendered
// line carries the severity, tag, message, and every V() key/value pair
// in attachment order.
func TestLoggerRendersTagAndValues(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{writer: &buf, level: Warning, tag: "resolver.template", active: true}

	l.V("pass", "P6").V("count", 3).Log("instantiation limit")

	assert.Equal(t, "warning: [resolver.template] instantiation limit pass=P6 count=3\n", buf.String())
}

// TestLoggerCauseIsAppended checks that Cause's error is rendered after
// the message.
func TestLoggerCauseIsAppended(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{writer: &buf, level: Error, active: true}

	l.Cause(errors.New("disk full")).Log("write failed")

	assert.Equal(t, "error: write failed: disk full\n", buf.String())
}

// TestLoggerVDoesNotMutateReceiver checks that V returns a new Logger
// rather than mutating the receiver, so a base Logger can be reused
// across a loop without values leaking between iterations.
func TestLoggerVDoesNotMutateReceiver(t *testing.T) {
	base := Logger{level: Info, active: true}

	withA := base.V("a", 1)
	withB := base.V("b", 2)

	assert.Len(t, withA.values, 1)
	assert.Len(t, withB.values, 1)
	assert.Empty(t, base.values)
}

// TestContextAtGatesOnFloor checks that At(level) only marks a Logger
// active when level meets or exceeds the Context's floor.
func TestContextAtGatesOnFloor(t *testing.T) {
	c := New(nil).(logContext)
	c.min = Warning

	assert.False(t, c.At(Info).Active())
	assert.True(t, c.At(Warning).Active())
	assert.True(t, c.At(Error).Active())
}

// TestContextTagChainsDotted checks that repeated Tag calls build a
// dotted chain rather than overwriting the previous tag.
func TestContextTagChainsDotted(t *testing.T) {
	c := New(nil)

	tagged := c.Tag("resolver").Tag("template")

	lc := tagged.(logContext)
	assert.Equal(t, "resolver.template", lc.tag)
}
