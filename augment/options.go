package augment

import (
	"github.com/katalvlaran/rmaug/eswarantarjan"
	"github.com/katalvlaran/rmaug/flow"
	"github.com/katalvlaran/rmaug/sourcecover"
)

// Options configures a call to Augment.
type Options struct {
	// Verbose enables one fmt.Printf line per major driver step.
	Verbose bool
	// Validate requests a perfect-matching sanity check on a caller-supplied
	// M (or on the oracle's result), failing with ErrNoPerfectMatching when
	// it does not hold. Off by default; the check is one pass over A and
	// does not re-run the oracle.
	Validate bool
	// FlowOptions is forwarded to the matching oracle when M is not
	// supplied.
	FlowOptions flow.FlowOptions
}

// DefaultOptions returns Options with validation off and default flow
// options.
func DefaultOptions() Options {
	return Options{FlowOptions: flow.DefaultOptions()}
}

func (o Options) sourceCoverOptions() sourcecover.Options {
	return sourcecover.Options{Verbose: o.Verbose}
}

func (o Options) eswaranTarjanOptions() eswarantarjan.Options {
	return eswarantarjan.Options{Verbose: o.Verbose}
}
