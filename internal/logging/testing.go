package logging

import (
	"bytes"
	"context"
)

// NewTestContext builds a context carrying a logger configured from flags.
// The logger writes into the returned buffer for assertions on log output.
func NewTestContext(flags Flags) (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	Configure(l, flags)
	return WithLogger(context.Background(), l), buf
}
