package clipboard

import (
	"encoding/base64"
	"io"
	"sync"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/port"
)

// OSC52 sets the clipboard of the terminal attached to w through the OSC 52
// escape sequence. Terminals that do not support it ignore the sequence.
type OSC52 struct {
	mu sync.Mutex
	w  io.Writer
}

var _ port.Clipboard = (*OSC52)(nil)

func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w}
}

func (c *OSC52) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
	if _, err := io.WriteString(c.w, seq); err != nil {
		return errors.Wrap(err, "write osc52 sequence")
	}
	return nil
}
