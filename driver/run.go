package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/kogu/golox/eval"
	"github.com/kogu/golox/lexer"
	"github.com/kogu/golox/parser"
	"github.com/kogu/golox/printer"
	"github.com/kogu/golox/report"
)

// ErrStatic is returned when the source has scan or syntax errors.
// The errors themselves have already gone to the reporter.
var ErrStatic = errors.New("source has errors")

// Runner scans, parses and then evaluates or prints one source unit at a time.
type Runner struct {
	reporter  report.Reporter
	evaluator *eval.Evaluator
	out       io.Writer
	mode      printer.Mode
}

func NewRunner(out io.Writer, reporter report.Reporter) *Runner {
	return &Runner{reporter: reporter, evaluator: eval.NewEvaluator(), out: out}
}

// SetMode makes the runner print expressions in mode instead of evaluating them.
func (r *Runner) SetMode(mode printer.Mode) {
	r.mode = mode
}

// Reset forgets errors reported by earlier runs.
func (r *Runner) Reset() {
	r.reporter.Reset()
}

// RunSource runs every expression in source, writing one line per result.
// A run-time error stops the run and the values computed so far are returned.
func (r *Runner) RunSource(source string) ([]eval.Value, error) {
	tokens, scanErrs := lexer.Lex(source)
	for _, err := range scanErrs {
		r.reporter.Handle(err)
	}

	exprs := parser.ParseAll(tokens, r.reporter)
	if r.reporter.ReceivedError() {
		if err := lexer.Join(scanErrs); err != nil {
			return nil, errors.Join(ErrStatic, err)
		}
		return nil, ErrStatic
	}

	if r.mode != 0 {
		for _, expr := range exprs {
			fmt.Fprintln(r.out, r.mode.Print(expr))
		}
		return nil, nil
	}

	values := make([]eval.Value, 0, len(exprs))
	for _, expr := range exprs {
		v, err := r.evaluator.Eval(expr)
		if err != nil {
			return values, fmt.Errorf("run: %w", err)
		}
		fmt.Fprintln(r.out, v)
		values = append(values, v)
	}

	return values, nil
}
