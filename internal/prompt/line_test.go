package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLinePrompt(t *testing.T) {
	var out bytes.Buffer
	l, err := NewLine(strings.NewReader("4\nabc\n"), &out)
	if err != nil {
		t.Fatalf("NewLine() failed: %v", err)
	}
	defer l.Close()

	ctx := context.Background()

	got, err := l.Prompt(ctx, "Guess a number from 1-6: ")
	if err != nil {
		t.Fatalf("Prompt() failed: %v", err)
	}
	if got != "4" {
		t.Errorf("first line = %q, want %q", got, "4")
	}

	got, err = l.Prompt(ctx, "again: ")
	if err != nil {
		t.Fatalf("Prompt() failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("second line = %q, want %q", got, "abc")
	}

	if _, err := l.Prompt(ctx, "eof: "); !errors.Is(err, io.EOF) {
		t.Errorf("Prompt() at end of input = %v, want io.EOF", err)
	}

	want := "Guess a number from 1-6: again: eof: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLinePromptAfterClose(t *testing.T) {
	l, err := NewLine(strings.NewReader("1\n"), io.Discard)
	if err != nil {
		t.Fatalf("NewLine() failed: %v", err)
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	// Closing twice is allowed
	if err := l.Close(); err != nil {
		t.Fatalf("second Close() failed: %v", err)
	}

	if _, err := l.Prompt(context.Background(), "> "); !errors.Is(err, ErrClosed) {
		t.Errorf("Prompt() after Close = %v, want ErrClosed", err)
	}
}

func TestLinePromptContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	l, err := NewLine(pr, io.Discard)
	if err != nil {
		t.Fatalf("NewLine() failed: %v", err)
	}
	defer l.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := l.Prompt(ctx, "> "); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Prompt() = %v, want context.DeadlineExceeded", err)
	}
}

func TestLinePromptCloseUnblocks(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	l, err := NewLine(pr, io.Discard)
	if err != nil {
		t.Fatalf("NewLine() failed: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := l.Prompt(context.Background(), "> ")
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	l.Close()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrClosed) {
			t.Errorf("Prompt() = %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Prompt() did not return after Close")
	}
}
