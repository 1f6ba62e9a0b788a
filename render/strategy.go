// Package render turns array accesses into terminal frames.
//
// Two strategies share the Strategy interface: Differential repaints only the
// columns touched by an access using relative cursor motion, FullRedraw
// repaints the whole grid from the frame model. One is picked at startup from
// the ANSI capability flag. Every frame goes through an Emitter, which owns the
// geometry guard and the throttle.
package render

import (
	"github.com/lixenwraith/termsort/logger"
)

// Strategy receives access notifications for one animation.
// values passed to Start is the live array; strategies read it but never write it.
type Strategy interface {
	// Start paints the first full frame
	Start(values []int, maximum int) error

	// Read is called before index is read
	Read(index int) error

	// BeforeWrite is called while values[index] still holds the old value
	BeforeWrite(index int) error

	// AfterWrite is called once values[index] holds the new value
	AfterWrite(index int) error

	// Commit marks columns left of index finalized and index as finalizing
	Commit(index int) error

	// Finish marks every column finalized and drops the highlight
	Finish() error
}

// New selects the strategy for the negotiated capability
func New(ansi bool, em *Emitter, theme Theme) Strategy {
	if ansi {
		logger.Logger.Debug().Str("mode", theme.Mode.String()).Msg("differential strategy")
		return NewDifferential(em, theme)
	}
	logger.Logger.Debug().Msg("full redraw strategy")
	return NewFullRedraw(em, theme)
}
