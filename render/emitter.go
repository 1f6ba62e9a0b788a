package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/termsort/logger"
	"github.com/lixenwraith/termsort/terminal"
)

// InterruptedMessage is printed when the user interrupts an animation
const InterruptedMessage = "Error. Program execution was interrupted"

var ErrInterrupted = errors.New("interrupted")

// DefaultDelay is the pause after each frame
// Some terminals drop output under back-to-back writes without it
const DefaultDelay = time.Millisecond

// Emitter is the only writer to the terminal during an animation.
// Each frame is: context check, geometry check, one write, then the throttle sleep.
type Emitter struct {
	ctx     context.Context
	backend terminal.Backend
	guard   *Guard
	delay   time.Duration

	frames int
	bytes  int
}

// NewEmitter captures the backend geometry; ctx cancellation interrupts the animation
func NewEmitter(ctx context.Context, backend terminal.Backend, delay time.Duration) *Emitter {
	if delay < 0 {
		delay = 0
	}
	return &Emitter{
		ctx:     ctx,
		backend: backend,
		guard:   NewGuard(backend),
		delay:   delay,
	}
}

// Emit writes one frame
// Nothing is written when the context is done or the geometry changed
func (e *Emitter) Emit(frame []byte) error {
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if err := e.guard.Check(); err != nil {
		logger.Logger.Debug().Err(err).Int("frames", e.frames).Msg("geometry guard tripped")
		return err
	}
	if err := e.backend.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	e.frames++
	e.bytes += len(frame)
	return e.throttle()
}

// Clear erases the terminal without escape sequences, under the same guard as Emit
// The ANSI strategy clears inside its first frame instead
func (e *Emitter) Clear() error {
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if err := e.guard.Check(); err != nil {
		return err
	}
	return terminal.Clear(e.backend, false)
}

func (e *Emitter) throttle() error {
	if e.delay <= 0 {
		return nil
	}
	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-e.ctx.Done():
		return fmt.Errorf("%w: %w", ErrInterrupted, e.ctx.Err())
	case <-t.C:
		return nil
	}
}

// Geometry returns the terminal size captured at construction
func (e *Emitter) Geometry() Geometry {
	return e.guard.Geometry()
}

// Frames returns the number of frames written
func (e *Emitter) Frames() int {
	return e.frames
}

// Bytes returns the total bytes written by Emit
func (e *Emitter) Bytes() int {
	return e.bytes
}
