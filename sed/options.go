// Package sed: functional configuration for the deposition kernel.
// Options follow the library convention: unexported state, WithX
// constructors that panic only on nonsensical values (programmer error),
// and a gatherOptions helper enforcing invariants.
package sed

// DefaultWorkers is the deposition parallelism when no option is given:
// a single worker, i.e. the fully sequential kernel.
const DefaultWorkers = 1

// minParallelParticles is the particle count below which WithWorkers is
// ignored: splitting tiny sets costs more than it saves.
const minParallelParticles = 64

const panicWorkersInvalid = "sed: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers int
}

// WithWorkers deposits particle ranges on n goroutines, each accumulating
// into a private weight lattice; the partial lattices are merged
// element-wise in worker order once all ranges finish, so the result does
// not depend on scheduling. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions resolves the effective configuration from defaults plus
// the supplied setters.
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
