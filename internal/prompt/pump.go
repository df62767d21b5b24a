package prompt

import (
	"bytes"
	"io"
	"sync"
)

// inputPump is the only reader of a stream shared by successive prompts.
// Bytes read but not consumed by one prompt stay pending for the next.
type inputPump struct {
	chunks chan []byte
	err    error // set before chunks is closed

	mu      sync.Mutex
	pending []byte

	stop     chan struct{}
	stopOnce sync.Once
}

func newInputPump(in io.Reader) *inputPump {
	p := &inputPump{
		chunks: make(chan []byte),
		stop:   make(chan struct{}),
	}
	go p.run(in)
	return p
}

func (p *inputPump) run(in io.Reader) {
	defer close(p.chunks)

	buf := make([]byte, 256)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case p.chunks <- chunk:
			case <-p.stop:
				p.err = ErrClosed
				return
			}
		}
		if err != nil {
			p.err = err
			return
		}
	}
}

// keep appends chunk to the pending input.
func (p *inputPump) keep(chunk []byte) {
	p.mu.Lock()
	p.pending = append(p.pending, chunk...)
	p.mu.Unlock()
}

// take copies pending input into b, stopping after the first line
// terminator ("\r", "\n" or "\r\n"). It reports whether a whole line was
// delivered.
func (p *inputPump) take(b []byte) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	end, line := len(p.pending), false
	if i := bytes.IndexAny(p.pending, "\r\n"); i >= 0 {
		end, line = i+1, true
		if p.pending[i] == '\r' && i+1 < len(p.pending) && p.pending[i+1] == '\n' {
			end++
		}
	}
	if end > len(b) {
		end, line = len(b), false
	}
	n := copy(b, p.pending[:end])
	p.pending = p.pending[n:]
	return n, line
}

// close stops delivering input. The goroutine reading the stream ends with
// its next read.
func (p *inputPump) close() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// reader returns a reader for one prompt.
func (p *inputPump) reader() *pumpReader {
	return &pumpReader{pump: p, done: make(chan struct{})}
}

// pumpReader hands pump input to one program. It ends with io.EOF after the
// first complete line or once closed, without consuming anything further.
type pumpReader struct {
	pump      *inputPump
	done      chan struct{}
	closeOnce sync.Once
	line      bool
}

func (r *pumpReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for {
		if r.line {
			return 0, io.EOF
		}
		select {
		case <-r.done:
			return 0, io.EOF
		default:
		}

		if n, line := r.pump.take(b); n > 0 {
			r.line = line
			return n, nil
		}

		select {
		case chunk, ok := <-r.pump.chunks:
			if !ok {
				return 0, r.pump.err
			}
			r.pump.keep(chunk)
		case <-r.done:
			return 0, io.EOF
		case <-r.pump.stop:
			return 0, ErrClosed
		}
	}
}

func (r *pumpReader) Close() error {
	r.closeOnce.Do(func() { close(r.done) })
	return nil
}
