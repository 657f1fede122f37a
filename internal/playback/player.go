// Package playback drives a cursor over an immutable trace, either by
// explicit commands or on a fixed-interval ticker.
package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/awmpietro/sortlab/internal/sorttrace"
)

const (
	RecordInterval = 1500 * time.Millisecond
	BarInterval    = 800 * time.Millisecond
)

type RenderFunc[T any] func(position int, step sorttrace.Step[T]) error

// Player is safe for concurrent use; Play holds the cursor only while
// advancing it, never while rendering.
type Player[T any] struct {
	mu    sync.Mutex
	steps []sorttrace.Step[T]
	pos   int
}

func NewPlayer[T any](tr *sorttrace.Trace[T]) *Player[T] {
	p := &Player[T]{}
	if tr != nil {
		p.steps = tr.Steps
	}
	return p
}

func (p *Player[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

func (p *Player[T]) Position() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

// Current returns the step under the cursor, or a ready placeholder for an
// empty trace.
func (p *Player[T]) Current() sorttrace.Step[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current()
}

func (p *Player[T]) current() sorttrace.Step[T] {
	if len(p.steps) == 0 {
		return sorttrace.Step[T]{Kind: sorttrace.KindStart, Action: "Ready to start"}
	}
	return p.steps[p.pos]
}

func (p *Player[T]) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos >= len(p.steps)-1
}

// Next advances one step. It reports false when already on the last step.
func (p *Player[T]) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos >= len(p.steps)-1 {
		return false
	}
	p.pos++
	return true
}

func (p *Player[T]) Prev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos == 0 {
		return false
	}
	p.pos--
	return true
}

func (p *Player[T]) Seek(pos int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pos < 0 || pos >= max(len(p.steps), 1) {
		return fmt.Errorf("seek %d out of range [0, %d)", pos, len(p.steps))
	}
	p.pos = pos
	return nil
}

func (p *Player[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = 0
}

// Play advances one step per tick and renders it. It returns nil once the
// last step has been rendered, ctx.Err() when ctx is cancelled, or the first
// render error.
func (p *Player[T]) Play(ctx context.Context, interval time.Duration, render RenderFunc[T]) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %s)", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if p.Done() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		p.mu.Lock()
		if p.pos >= len(p.steps)-1 {
			p.mu.Unlock()
			return nil
		}
		p.pos++
		pos, step := p.pos, p.current()
		p.mu.Unlock()

		if err := render(pos, step); err != nil {
			return err
		}
	}
}
