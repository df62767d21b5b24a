package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/cancelreader"
)

// Line reads whole lines from an input stream. The stream is wrapped in a
// cancel reader at construction so Close can interrupt a pending read.
type Line struct {
	in  cancelreader.CancelReader
	out io.Writer

	lines chan string
	eof   chan struct{} // closed when the read loop stops
	err   error         // read loop error, valid after eof is closed

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewLine starts reading lines from in. Prompts are written to out.
func NewLine(in io.Reader, out io.Writer) (*Line, error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("prompt: cannot wrap input: %w", err)
	}

	l := &Line{
		in:    cr,
		out:   out,
		lines: make(chan string),
		eof:   make(chan struct{}),
		done:  make(chan struct{}),
	}
	go l.readLoop()
	return l, nil
}

func (l *Line) readLoop() {
	defer close(l.eof)

	sc := bufio.NewScanner(l.in)
	for sc.Scan() {
		select {
		case l.lines <- sc.Text():
		case <-l.done:
			l.err = ErrClosed
			return
		}
	}

	switch err := sc.Err(); {
	case err == nil:
		l.err = io.EOF
	case errors.Is(err, cancelreader.ErrCanceled):
		l.err = ErrClosed
	default:
		l.err = fmt.Errorf("prompt: read failed: %w", err)
	}
}

// Prompt writes label and waits for the next line.
func (l *Line) Prompt(ctx context.Context, label string) (string, error) {
	select {
	case <-l.done:
		return "", ErrClosed
	default:
	}

	if _, err := io.WriteString(l.out, label); err != nil {
		return "", fmt.Errorf("prompt: cannot write label: %w", err)
	}

	select {
	case line := <-l.lines:
		return line, nil
	case <-l.eof:
		return "", l.err
	case <-l.done:
		return "", ErrClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close cancels any pending read and releases the input.
func (l *Line) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)
		l.in.Cancel()
		l.closeErr = l.in.Close()
	})
	return l.closeErr
}

var _ Prompter = (*Line)(nil)
