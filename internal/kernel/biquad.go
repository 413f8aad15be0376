package kernel

// denormalZap flushes true subnormals to zero while leaving audio-range
// values unaffected (1e-15 is far below float32 precision at sample
// magnitudes near 1.0, so the add-then-subtract is a no-op there, but it
// swamps and then cancels an actual subnormal). This must be applied in
// float32 arithmetic: it changes the engine's low bits in a way downstream
// reproducibility tests observe directly.
func denormalZap(x float32) float32 {
	const eps = float32(1e-15)
	return x + eps - eps
}

// BiquadCoeffs are the direct-form-I coefficients for one block. The
// caller is expected to have already divided b0..b2/a1..a2 by a0.
type BiquadCoeffs struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Biquad applies a direct-form-I IIR filter to buf in place. Mono state is
// [x1,x2,y1,y2]; stereo state is [lx1,rx1,lx2,rx2,ly1,ry1,ly2,ry2] (L/R
// history interleaved in pairs, not channel-contiguous) — this layout is
// part of the contract and callers rely on it verbatim. Stereo runs two
// independent delay lines sharing the same coefficients.
func Biquad(c BiquadCoeffs, buf []float32, channels, frames int, state []float32) {
	b0, b1, b2 := float32(c.B0), float32(c.B1), float32(c.B2)
	a1, a2 := float32(c.A1), float32(c.A2)

	step := func(x, x1, x2, y1, y2 float32) (y, nx1, nx2, ny1, ny2 float32) {
		xz := denormalZap(x)
		y = b0*xz + b1*x1 + b2*x2 - a1*y1 - a2*y2
		return y, xz, x1, y, y1
	}

	if channels == 1 {
		x1, x2, y1, y2 := state[0], state[1], state[2], state[3]
		for n := 0; n < frames; n++ {
			var y float32
			y, x1, x2, y1, y2 = step(buf[n], x1, x2, y1, y2)
			buf[n] = y
		}
		state[0], state[1], state[2], state[3] = x1, x2, y1, y2
		return
	}

	lx1, rx1, lx2, rx2 := state[0], state[1], state[2], state[3]
	ly1, ry1, ly2, ry2 := state[4], state[5], state[6], state[7]
	for n := 0; n < frames; n++ {
		var l, r float32
		l, lx1, lx2, ly1, ly2 = step(buf[n*2], lx1, lx2, ly1, ly2)
		r, rx1, rx2, ry1, ry2 = step(buf[n*2+1], rx1, rx2, ry1, ry2)
		buf[n*2] = l
		buf[n*2+1] = r
	}
	state[0], state[1], state[2], state[3] = lx1, rx1, lx2, rx2
	state[4], state[5], state[6], state[7] = ly1, ry1, ly2, ry2
}
