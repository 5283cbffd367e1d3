package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Progress renders a single self-overwriting "[done/total] checked..." line.
// It stays silent when the output is not a terminal.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	dirty   bool
	last    int
}

// NewProgress returns a Progress writing to f if f is a terminal.
func NewProgress(f *os.File) *Progress {
	fd := f.Fd()
	return newProgress(f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func newProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{w: w, enabled: enabled}
}

// Update redraws the progress line. Updates arriving out of order from
// concurrent workers never move the count backwards.
func (p *Progress) Update(done, total int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if done <= p.last {
		return
	}
	p.last = done
	fmt.Fprintf(p.w, "\r[%d/%d] checked...", done, total)
	p.dirty = true
}

// Finish ends the progress line so following output starts on a new line.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dirty {
		fmt.Fprintln(p.w)
		p.dirty = false
	}
}
