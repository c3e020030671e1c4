package schematic

import (
	"fmt"

	"go.uber.org/zap"
)

// Dedup selects how adjacent hits are collapsed into distinct numbers.
type Dedup int

const (
	// DedupCaseTable merges the rows above and below a marker with a fixed
	// left/center/right table and leaves the marker's own row unmerged.
	DedupCaseTable Dedup = iota
	// DedupIdentity merges hits that belong to the same token.
	DedupIdentity
)

// String returns the configuration name of d.
func (d Dedup) String() string {
	switch d {
	case DedupCaseTable:
		return "case-table"
	case DedupIdentity:
		return "identity"
	default:
		return fmt.Sprintf("Dedup(%d)", int(d))
	}
}

// ParseDedup maps a configuration name back to a Dedup.
// The empty string selects DedupCaseTable.
func ParseDedup(s string) (Dedup, error) {
	switch s {
	case "", "case-table":
		return DedupCaseTable, nil
	case "identity":
		return DedupIdentity, nil
	default:
		return 0, fmt.Errorf("%w: unknown dedup mode %q", ErrOptionViolation, s)
	}
}

// Option configures aggregation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by the call it was passed to.
type Option func(*Options)

// Options holds the parameters of a resolution pass.
type Options struct {
	// Symbol is the marker character that qualifies a gear.
	Symbol byte

	// Dedup selects the adjacency resolver.
	Dedup Dedup

	// Logger receives debug output; never nil after option parsing.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Symbol '*', DedupCaseTable and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Symbol: DefaultSymbol,
		Dedup:  DedupCaseTable,
		Logger: zap.NewNop(),
	}
}

// WithSymbol sets the qualifying gear symbol. s must satisfy IsMarker.
func WithSymbol(s byte) Option {
	return func(o *Options) {
		if !IsMarker(s) {
			o.err = fmt.Errorf("%w: %q is not a marker character", ErrOptionViolation, s)
			return
		}
		o.Symbol = s
	}
}

// WithDedup selects the adjacency resolver.
func WithDedup(d Dedup) Option {
	return func(o *Options) {
		if d != DedupCaseTable && d != DedupIdentity {
			o.err = fmt.Errorf("%w: unknown dedup mode %d", ErrOptionViolation, int(d))
			return
		}
		o.Dedup = d
	}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
