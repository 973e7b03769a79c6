package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestOSC52_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOSC52(&buf).WriteText("hunter2"))
	assert.Equal(t, "\x1b]52;c;aHVudGVyMg==\a", buf.String())
}

func TestOSC52_WriteError(t *testing.T) {
	err := NewOSC52(failingWriter{}).WriteText("x")
	assert.ErrorContains(t, err, "closed")
}
