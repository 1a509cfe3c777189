// Package report collects syntax errors without stopping the pipeline.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/kogu/golox/token"
)

// Reporter receives errors found while scanning or parsing.
type Reporter interface {
	Handle(err error)
	ReceivedError() bool
	Reset()
}

// SyntaxError is an error located at a token.
type SyntaxError struct {
	Token   token.Token
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.Token.Where(), e.Message)
}

// Console prints every error it receives on its own line.
type Console struct {
	w        io.Writer
	received bool
}

// NewConsole returns a Console writing to w, or to os.Stderr if w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{w: w}
}

func (c *Console) Handle(err error) {
	c.received = true
	fmt.Fprintln(c.w, err)
}

func (c *Console) ReceivedError() bool {
	return c.received
}

func (c *Console) Reset() {
	c.received = false
}

var _ Reporter = &Console{}

// Recorder keeps errors in memory.
type Recorder struct {
	errs []error
}

func (r *Recorder) Handle(err error) {
	r.errs = append(r.errs, err)
}

func (r *Recorder) ReceivedError() bool {
	return len(r.errs) > 0
}

func (r *Recorder) Reset() {
	r.errs = nil
}

// Last returns the most recent error, or nil.
func (r *Recorder) Last() error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

// Errors returns every error received since the last Reset.
func (r *Recorder) Errors() []error {
	return r.errs
}

var _ Reporter = &Recorder{}
