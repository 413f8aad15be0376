package registry

import (
	"fmt"
	"io"

	"github.com/sndcore/dspkernel/internal/kernel"
)

func (r *Registry) buf(args Args, key string) ([]float32, error) {
	h, err := args.handle(key)
	if err != nil {
		return nil, err
	}
	data, _, ok := r.Store.Get(h)
	if !ok {
		return nil, fmt.Errorf("registry: handle %v for %q is not valid", h, key)
	}
	return data, nil
}

func (r *Registry) opAllocate(args Args) (any, error) {
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	zero, _ := args["zero"].(bool)
	return r.Store.Allocate(frames, channels, zero), nil
}

func (r *Registry) opReallocate(args Args) (any, error) {
	h, err := args.handle("handle")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	return r.Store.Reallocate(h, frames, channels)
}

func (r *Registry) opDeallocate(args Args) (any, error) {
	h, err := args.handle("handle")
	if err != nil {
		return nil, err
	}
	return nil, r.Store.Deallocate(h)
}

func (r *Registry) opSetSamples(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	value, err := args.f64("value")
	if err != nil {
		return nil, err
	}
	kernel.SetSamples(buf, channels, frames, float32(value))
	return nil, nil
}

func (r *Registry) opCopy(args Args) (any, error) {
	dst, err := r.buf(args, "dst")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	kernel.CopySamples(dst, src, channels, frames)
	return nil, nil
}

func (r *Registry) opChangeGain(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	lg, err := args.f64("leftGain")
	if err != nil {
		return nil, err
	}
	rg, err := args.f64("rightGain")
	if err != nil {
		return nil, err
	}
	kernel.ChangeGain(buf, channels, frames, float32(lg), float32(rg))
	return nil, nil
}

func (r *Registry) opMixIn(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	lg, err := args.f64("leftGain")
	if err != nil {
		return nil, err
	}
	rg, err := args.f64("rightGain")
	if err != nil {
		return nil, err
	}
	if off, ok := args["srcOffset"].(int); ok {
		src = src[off:]
	}
	kernel.MixIn(buf, src, channels, frames, float32(lg), float32(rg))
	return nil, nil
}

func (r *Registry) opMixInPan(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	lg, err := args.f64("leftGain")
	if err != nil {
		return nil, err
	}
	rg, err := args.f64("rightGain")
	if err != nil {
		return nil, err
	}
	kernel.MixInPan(buf, src, frames, float32(lg), float32(rg))
	return nil, nil
}

func (r *Registry) opMultiplyIn(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	gain, err := args.f64("gain")
	if err != nil {
		return nil, err
	}
	kernel.MultiplyIn(buf, src, channels, frames, float32(gain))
	return nil, nil
}

func (r *Registry) opStandardize(args Args) (any, error) {
	dst, err := r.buf(args, "dst")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	srcRate, err := args.intv("srcRate")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	kernel.Standardize(srcRate, channels, src, frames, dst)
	return nil, nil
}

func (r *Registry) opWavetableIn(args Args) (any, error) {
	dst, err := r.buf(args, "dst")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	ws, ok := args["settings"].(*kernel.WavetableSettings)
	if !ok {
		return nil, fmt.Errorf("registry: wavetableIn: arg %q is not *kernel.WavetableSettings", "settings")
	}
	return kernel.WavetableIn(r.Tables, dst, channels, frames, src, ws), nil
}

func (r *Registry) opWaveModIn(args Args) (any, error) {
	dst, err := r.buf(args, "dst")
	if err != nil {
		return nil, err
	}
	src, err := r.buf(args, "src")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	ws, ok := args["settings"].(*kernel.WaveModSettings)
	if !ok {
		return nil, fmt.Errorf("registry: waveModIn: arg %q is not *kernel.WaveModSettings", "settings")
	}
	curve, ok := args["pitchCurve"].([]float64)
	if !ok {
		return nil, fmt.Errorf("registry: waveModIn: arg %q is not []float64", "pitchCurve")
	}
	return kernel.WaveModIn(r.Tables, dst, channels, frames, src, ws, curve), nil
}

func (r *Registry) opDelay(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	params, ok := args["params"].(kernel.DelayParams)
	if !ok {
		return nil, fmt.Errorf("registry: delay: arg %q is not kernel.DelayParams", "params")
	}
	state, ok := args["state"].(*kernel.DelayState)
	if !ok {
		return nil, fmt.Errorf("registry: delay: arg %q is not *kernel.DelayState", "state")
	}
	kernel.Delay(params, buf, channels, frames, state)
	return nil, nil
}

func (r *Registry) opBiquad(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	coeffs, ok := args["coeffs"].(kernel.BiquadCoeffs)
	if !ok {
		return nil, fmt.Errorf("registry: biquad: arg %q is not kernel.BiquadCoeffs", "coeffs")
	}
	state, ok := args["state"].([]float32)
	if !ok {
		return nil, fmt.Errorf("registry: biquad: arg %q is not []float32", "state")
	}
	kernel.Biquad(coeffs, buf, channels, frames, state)
	return nil, nil
}

func (r *Registry) opOnePole(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	coeffs, ok := args["coeffs"].(kernel.OnePoleCoeffs)
	if !ok {
		return nil, fmt.Errorf("registry: onePole: arg %q is not kernel.OnePoleCoeffs", "coeffs")
	}
	state, ok := args["state"].(*kernel.OnePoleState)
	if !ok {
		return nil, fmt.Errorf("registry: onePole: arg %q is not *kernel.OnePoleState", "state")
	}
	kernel.OnePole(coeffs, buf, channels, frames, state)
	return nil, nil
}

func (r *Registry) opEnvelope(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	point, ok := args["point"].(kernel.ModPoint)
	if !ok {
		return nil, fmt.Errorf("registry: envelope: arg %q is not kernel.ModPoint", "point")
	}
	scratch, ok := args["scratch"].(*kernel.Scratch)
	if !ok {
		return nil, fmt.Errorf("registry: envelope: arg %q is not *kernel.Scratch", "scratch")
	}
	kernel.Envelope(r.Tables, buf, channels, frames, point, scratch)
	return nil, nil
}

func (r *Registry) opOverdrive(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	kernel.OverdriveBuffer(buf, channels, frames)
	return nil, nil
}

func (r *Registry) opClip(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	kernel.ClipBuffer(buf, channels, frames)
	return nil, nil
}

func (r *Registry) opNormalize(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	desired, err := args.f64("desired")
	if err != nil {
		return nil, err
	}
	kernel.Normalize(buf, channels, frames, float32(desired))
	return nil, nil
}

func (r *Registry) opWriteBytes(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	w, ok := args["writer"].(io.Writer)
	if !ok {
		return nil, fmt.Errorf("registry: writeBytes: arg %q is not io.Writer", "writer")
	}
	return nil, kernel.WriteBytes(w, buf, channels, frames)
}

func (r *Registry) opWriteWavBytes(args Args) (any, error) {
	buf, err := r.buf(args, "buf")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	w, ok := args["writer"].(io.Writer)
	if !ok {
		return nil, fmt.Errorf("registry: writeWavBytes: arg %q is not io.Writer", "writer")
	}
	scratch, ok := args["scratch"].(*kernel.Scratch)
	if !ok {
		return nil, fmt.Errorf("registry: writeWavBytes: arg %q is not *kernel.Scratch", "scratch")
	}
	return nil, kernel.WriteWavBytes(w, buf, channels, frames, scratch)
}

func (r *Registry) opReadWavBytes(args Args) (any, error) {
	dst, err := r.buf(args, "dst")
	if err != nil {
		return nil, err
	}
	bitDepth, err := args.intv("bitDepth")
	if err != nil {
		return nil, err
	}
	channels, err := args.intv("channels")
	if err != nil {
		return nil, err
	}
	frames, err := args.intv("frames")
	if err != nil {
		return nil, err
	}
	rd, ok := args["reader"].(io.Reader)
	if !ok {
		return nil, fmt.Errorf("registry: readWavBytes: arg %q is not io.Reader", "reader")
	}
	scratch, ok := args["scratch"].(*kernel.Scratch)
	if !ok {
		return nil, fmt.Errorf("registry: readWavBytes: arg %q is not *kernel.Scratch", "scratch")
	}
	return nil, kernel.ReadWavBytes(dst, rd, bitDepth, channels, frames, scratch)
}
