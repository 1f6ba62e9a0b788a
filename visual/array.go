// Package visual wraps the array being sorted so that every element access is
// rendered before control returns to the algorithm.
package visual

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/termsort/logger"
	"github.com/lixenwraith/termsort/render"
)

var (
	ErrEmptyInput       = errors.New("input must be non-empty with at least one positive value")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrNegativeValue    = errors.New("negative value")
	ErrHeightOverflow   = errors.New("value exceeds grid height")
)

// Toner is notified of every access with the value involved
type Toner interface {
	Tone(value, maximum int)
}

// Option configures an Array
type Option func(*Array)

// WithTone sonifies every access through t
func WithTone(t Toner) Option {
	return func(a *Array) {
		a.toner = t
	}
}

// Array is the instrumented container. Only Read and Write touch the
// values, and each access is rendered by the strategy before returning.
type Array struct {
	values   []int
	maximum  int
	strategy render.Strategy
	toner    Toner

	reads  int
	writes int
}

// New copies values, validates them, and paints the first frame
func New(values []int, strategy render.Strategy, opts ...Option) (*Array, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	maximum := 0
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrEmptyInput, v, i)
		}
		maximum = max(maximum, v)
	}
	if maximum < 1 {
		return nil, ErrEmptyInput
	}

	a := &Array{
		values:   slices.Clone(values),
		maximum:  maximum,
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(a)
	}

	logger.Logger.Debug().Int("length", len(values)).Int("maximum", maximum).Msg("array created")
	if err := strategy.Start(a.values, maximum); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the fixed number of columns
func (a *Array) Len() int {
	return len(a.values)
}

// Maximum returns the grid height captured at construction
func (a *Array) Maximum() int {
	return a.maximum
}

// Read renders an access to index and returns its value
func (a *Array) Read(index int) (int, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	if err := a.strategy.Read(index); err != nil {
		return 0, err
	}
	a.reads++
	v := a.values[index]
	a.tone(v)
	return v, nil
}

// Write stores value at index, rendering the column before and after the change
func (a *Array) Write(index, value int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: %d at index %d", ErrNegativeValue, value, index)
	}
	if value > a.maximum {
		return fmt.Errorf("%w: %d at index %d, maximum %d", ErrHeightOverflow, value, index, a.maximum)
	}

	if err := a.strategy.BeforeWrite(index); err != nil {
		return err
	}
	a.values[index] = value
	a.writes++
	if err := a.strategy.AfterWrite(index); err != nil {
		return err
	}
	a.tone(value)
	return nil
}

// EndOfSort runs the completion animation left to right
func (a *Array) EndOfSort() error {
	for i := range a.values {
		if err := a.strategy.Commit(i); err != nil {
			return err
		}
		a.tone(a.values[i])
	}
	logger.Logger.Debug().Int("reads", a.reads).Int("writes", a.writes).Msg("sort finalized")
	return a.strategy.Finish()
}

// Values returns a copy of the current contents
func (a *Array) Values() []int {
	return slices.Clone(a.values)
}

// Stats returns the number of reads and writes performed so far
func (a *Array) Stats() (reads, writes int) {
	return a.reads, a.writes
}

func (a *Array) checkIndex(index int) error {
	if index < 0 || index >= len(a.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, len(a.values))
	}
	return nil
}

func (a *Array) tone(v int) {
	if a.toner != nil {
		a.toner.Tone(v, a.maximum)
	}
}
