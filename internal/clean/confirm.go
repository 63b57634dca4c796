package clean

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineConfirmer reads a single answer line. Only "y", in any case, approves.
type LineConfirmer struct {
	r *bufio.Reader
}

// NewLineConfirmer reads answers from in.
func NewLineConfirmer(in io.Reader) *LineConfirmer {
	return &LineConfirmer{r: bufio.NewReader(in)}
}

// Confirm reads one line. End of input before any answer declines.
func (c *LineConfirmer) Confirm() (bool, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
