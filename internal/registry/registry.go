// Package registry binds the engine's stable operation names (spec §6) to
// typed Go entry points, replacing the source's heterogeneous
// host-marshalled argument list with a small argument-bag type that each
// operation type-asserts into its real, typed parameters. Initialization
// is one-shot; after New returns, the table is read-only.
package registry

import (
	"fmt"

	"github.com/sndcore/dspkernel/internal/bufstore"
	"github.com/sndcore/dspkernel/internal/kernel"
)

// Args is the typed argument bag a host bridge populates per call. Each
// operation reads the keys and Go types it expects; a key of the wrong
// type or a missing required key is reported as an error rather than
// panicking, since this is the one layer between the hot-path kernel and
// an external caller.
type Args map[string]any

func (a Args) handle(key string) (bufstore.Handle, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("registry: missing handle arg %q", key)
	}
	h, ok := v.(bufstore.Handle)
	if !ok {
		return 0, fmt.Errorf("registry: arg %q is not a Handle", key)
	}
	return h, nil
}

func (a Args) intv(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("registry: missing int arg %q", key)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("registry: arg %q is not an int", key)
	}
	return n, nil
}

func (a Args) f64(key string) (float64, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("registry: missing float arg %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("registry: arg %q is not a float", key)
	}
}

// Operation is a single registered entry point.
type Operation func(Args) (any, error)

// Registry is the name -> Operation dispatch table plus the process-wide
// lookup tables and buffer store every operation is built against.
type Registry struct {
	ops    map[string]Operation
	Tables *kernel.Tables
	Store  *bufstore.Store
}

// New builds the registry: fills the lookup tables and populates the
// dispatch table with the stable names from spec §6. This is the direct
// analogue of the source's "AS3_DeclareFuncs"-style startup registration.
func New() *Registry {
	r := &Registry{
		ops:    make(map[string]Operation),
		Tables: kernel.NewTables(),
		Store:  bufstore.New(),
	}
	r.registerAll()
	return r
}

// Call dispatches to the named operation. Unknown names and per-operation
// argument errors are both reported as errors, not panics — the registry
// is the validation boundary spec §7 places one layer above the hot path.
func (r *Registry) Call(name string, args Args) (any, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown operation %q", name)
	}
	return op(args)
}

// Names returns the registered operation names, for introspection/tests.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for n := range r.ops {
		names = append(names, n)
	}
	return names
}

func (r *Registry) registerAll() {
	r.ops["allocateSampleMemory"] = r.opAllocate
	r.ops["reallocateSampleMemory"] = r.opReallocate
	r.ops["deallocateSampleMemory"] = r.opDeallocate
	r.ops["setSamples"] = r.opSetSamples
	r.ops["copy"] = r.opCopy
	r.ops["changeGain"] = r.opChangeGain
	r.ops["mixIn"] = r.opMixIn
	r.ops["mixInPan"] = r.opMixInPan
	r.ops["multiplyIn"] = r.opMultiplyIn
	r.ops["standardize"] = r.opStandardize
	r.ops["wavetableIn"] = r.opWavetableIn
	r.ops["waveModIn"] = r.opWaveModIn
	r.ops["delay"] = r.opDelay
	r.ops["biquad"] = r.opBiquad
	r.ops["onePole"] = r.opOnePole
	r.ops["envelope"] = r.opEnvelope
	r.ops["overdrive"] = r.opOverdrive
	r.ops["clip"] = r.opClip
	r.ops["normalize"] = r.opNormalize
	r.ops["writeBytes"] = r.opWriteBytes
	r.ops["writeWavBytes"] = r.opWriteWavBytes
	r.ops["readWavBytes"] = r.opReadWavBytes
}
