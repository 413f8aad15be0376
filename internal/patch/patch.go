// Package patch loads a YAML "patch program" — a chain of registry
// operations to run, in order, over a single mono/stereo buffer — and
// gives the registry's host-bridge-shaped dispatch table (internal/registry)
// a concrete non-interactive caller, the way a real host bridge would drive
// it from a scripted or serialized description instead of Go call sites.
package patch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sndcore/dspkernel/internal/kernel"
	"github.com/sndcore/dspkernel/internal/registry"
)

// Step is one entry in a patch program: an operation name plus its
// parameters, as YAML would naturally decode them (strings, numbers,
// nested maps/sequences).
type Step struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params"`
}

// Program is an ordered list of steps applied to the same buffer.
type Program struct {
	Steps []Step `yaml:"steps"`
}

// Load parses a patch program from r.
func Load(r io.Reader) (*Program, error) {
	var p Program
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("patch: decode: %w", err)
	}
	return &p, nil
}

func floatParam(params map[string]any, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// Run applies every step of p to the buffer channels/frames in place,
// via the given Registry. Each step keeps its own filter/delay state for
// the lifetime of the Run call, so repeated ops (e.g. two "biquad" steps
// with different roles) never share state by accident.
func Run(p *Program, r *registry.Registry, buf []float32, channels, frames int) error {
	h := r.Store.Allocate(frames, channels, true)
	data, _, _ := r.Store.Get(h)
	copy(data, buf[:frames*channels])

	scratch := kernel.NewScratch()

	for _, step := range p.Steps {
		switch step.Op {
		case "changeGain":
			lg := floatParam(step.Params, "leftGain", 1)
			rg := floatParam(step.Params, "rightGain", lg)
			if _, err := r.Call("changeGain", registry.Args{
				"buf": h, "channels": channels, "frames": frames,
				"leftGain": lg, "rightGain": rg,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "biquad":
			var biquadState []float32
			if channels == 1 {
				biquadState = make([]float32, 4)
			} else {
				biquadState = make([]float32, 8)
			}
			coeffs := kernel.BiquadCoeffs{
				B0: floatParam(step.Params, "b0", 1),
				B1: floatParam(step.Params, "b1", 0),
				B2: floatParam(step.Params, "b2", 0),
				A1: floatParam(step.Params, "a1", 0),
				A2: floatParam(step.Params, "a2", 0),
			}
			if _, err := r.Call("biquad", registry.Args{
				"buf": h, "channels": channels, "frames": frames,
				"coeffs": coeffs, "state": biquadState,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "onePole":
			var onePoleState kernel.OnePoleState
			coeffs := kernel.OnePoleCoeffs{
				A0: floatParam(step.Params, "a0", 1),
				A1: floatParam(step.Params, "a1", 0),
				B1: floatParam(step.Params, "b1", 0),
			}
			if _, err := r.Call("onePole", registry.Args{
				"buf": h, "channels": channels, "frames": frames,
				"coeffs": coeffs, "state": &onePoleState,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "delay":
			length := int(floatParam(step.Params, "length", 0))
			delayState := kernel.NewDelayState(length, channels)
			params := kernel.DelayParams{
				Length:   length,
				DryMix:   floatParam(step.Params, "dryMix", 1),
				WetMix:   floatParam(step.Params, "wetMix", 0),
				Feedback: floatParam(step.Params, "feedback", 0),
			}
			if _, err := r.Call("delay", registry.Args{
				"buf": h, "channels": channels, "frames": frames,
				"params": params, "state": delayState,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "envelope":
			point := kernel.ModPoint{
				Y0: floatParam(step.Params, "y0", 0),
				Y1: floatParam(step.Params, "y1", 0),
				Y2: floatParam(step.Params, "y2", 0),
				Y3: floatParam(step.Params, "y3", 0),
			}
			if _, err := r.Call("envelope", registry.Args{
				"buf": h, "channels": channels, "frames": frames,
				"point": point, "scratch": scratch,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "overdrive":
			if _, err := r.Call("overdrive", registry.Args{"buf": h, "channels": channels, "frames": frames}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "clip":
			if _, err := r.Call("clip", registry.Args{"buf": h, "channels": channels, "frames": frames}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		case "normalize":
			desired := floatParam(step.Params, "desired", 1)
			if _, err := r.Call("normalize", registry.Args{
				"buf": h, "channels": channels, "frames": frames, "desired": desired,
			}); err != nil {
				return fmt.Errorf("patch: step %q: %w", step.Op, err)
			}

		default:
			return fmt.Errorf("patch: unknown step op %q", step.Op)
		}
	}

	copy(buf[:frames*channels], data)
	r.Store.Deallocate(h)
	return nil
}
