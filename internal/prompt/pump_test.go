package prompt

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	done := make(chan string, 1)
	go func() {
		var sb strings.Builder
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			sb.Write(buf[:n])
			if err != nil {
				done <- sb.String()
				return
			}
		}
	}()
	select {
	case s := <-done:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("read did not finish")
		return ""
	}
}

func TestPumpReaderStopsAfterOneLine(t *testing.T) {
	pump := newInputPump(strings.NewReader("99\r1\r\n7"))
	defer pump.close()

	if got := readAll(t, pump.reader()); got != "99\r" {
		t.Errorf("first reader got %q, want %q", got, "99\r")
	}
	if got := readAll(t, pump.reader()); got != "1\r\n" {
		t.Errorf("second reader got %q, want %q", got, "1\r\n")
	}
	if got := readAll(t, pump.reader()); got != "7" {
		t.Errorf("third reader got %q, want %q", got, "7")
	}
}

func TestPumpReaderCloseKeepsInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	pump := newInputPump(pr)
	defer pump.close()

	stale := pump.reader()
	staleDone := make(chan error, 1)
	go func() {
		_, err := stale.Read(make([]byte, 16))
		staleDone <- err
	}()

	stale.Close()
	select {
	case err := <-staleDone:
		if !errors.Is(err, io.EOF) {
			t.Fatalf("closed reader returned %v, want io.EOF", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("closed reader stayed blocked")
	}

	go func() { _, _ = pw.Write([]byte("4\r")) }()
	if got := readAll(t, pump.reader()); got != "4\r" {
		t.Errorf("next reader got %q, want %q", got, "4\r")
	}
}

func TestPumpClose(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	pump := newInputPump(pr)
	r := pump.reader()
	pump.close()

	if _, err := r.Read(make([]byte, 8)); !errors.Is(err, ErrClosed) {
		t.Errorf("Read after close = %v, want ErrClosed", err)
	}
}

func promptOnce(t *testing.T, p Prompter) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := p.Prompt(ctx, "Guess: ")
	if err != nil {
		t.Fatalf("Prompt() failed: %v", err)
	}
	return got
}

func TestTeaPromptsBackToBack(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	p := NewTea(pr, io.Discard, tea.WithoutSignalHandler())
	defer p.Close()

	go func() { _, _ = pw.Write([]byte("9\r")) }()
	if got := promptOnce(t, p); got != "9" {
		t.Fatalf("first prompt got %q, want %q", got, "9")
	}

	// Typed before the next prompt starts.
	go func() {
		_, _ = pw.Write([]byte("4\r"))
		_, _ = pw.Write([]byte("5\r"))
	}()
	if got := promptOnce(t, p); got != "4" {
		t.Errorf("second prompt got %q, want %q", got, "4")
	}
	if got := promptOnce(t, p); got != "5" {
		t.Errorf("third prompt got %q, want %q", got, "5")
	}
}

func TestTeaTypeAheadInOneChunk(t *testing.T) {
	p := NewTea(strings.NewReader("99\r1\r"), io.Discard, tea.WithoutSignalHandler())
	defer p.Close()

	if got := promptOnce(t, p); got != "99" {
		t.Errorf("first prompt got %q, want %q", got, "99")
	}
	if got := promptOnce(t, p); got != "1" {
		t.Errorf("second prompt got %q, want %q", got, "1")
	}
}
