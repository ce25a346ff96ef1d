// Package prompt asks the user for the numbers an analysis needs.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrBadInput is returned when the user enters something that isn't a number.
var ErrBadInput = errors.New("not a number")

// Request asks for one number, which is stored in Value.
type Request struct {
	Label string
	Value *float64
}

// Ask fills in the requests, using an interactive form if in is a terminal and
// reading whitespace-separated numbers from in otherwise.
func Ask(ctx context.Context, in *os.File, out io.Writer, reqs ...Request) error {
	if len(reqs) == 0 {
		return nil
	}
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return Form(ctx, reqs...)
	}
	return Scan(in, out, reqs...)
}

// Scan prints each label to out and reads a number from in. Numbers may be
// separated by any whitespace, so all of them can be piped in on one line.
func Scan(in io.Reader, out io.Writer, reqs ...Request) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for _, req := range reqs {
		fmt.Fprint(out, req.Label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading %q: %w", strings.TrimSpace(req.Label), err)
			}
			return fmt.Errorf("reading %q: %w", strings.TrimSpace(req.Label), io.ErrUnexpectedEOF)
		}
		v, err := parse(sc.Text())
		if err != nil {
			return err
		}
		*req.Value = v
	}
	// Terminate the last prompt, as the user's newline wasn't echoed to out.
	fmt.Fprintln(out)
	return nil
}

// Form asks for all requests in a single interactive form.
func Form(ctx context.Context, reqs ...Request) error {
	texts := make([]string, len(reqs))
	fields := make([]huh.Field, len(reqs))
	for i, req := range reqs {
		fields[i] = huh.NewInput().
			Title(strings.TrimSpace(req.Label)).
			Value(&texts[i]).
			Validate(func(s string) error {
				_, err := parse(s)
				return err
			})
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx); err != nil {
		return err
	}
	for i, req := range reqs {
		v, err := parse(texts[i])
		if err != nil {
			return err
		}
		*req.Value = v
	}
	return nil
}

func parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	return v, nil
}
