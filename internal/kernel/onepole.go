package kernel

// OnePoleCoeffs are the coefficients for a one-pole IIR filter.
type OnePoleCoeffs struct {
	A0, A1, B1 float64
}

// OnePoleState is the persistent per-voice state: previous input/output
// for each channel, read before processing and written after.
type OnePoleState struct {
	LX, LY float32
	RX, RY float32
}

// OnePole applies a one-pole IIR filter to buf in place:
// y[n] = a0*x[n] + a1*x[n-1] + b1*y[n-1], with denormal-zap on x.
func OnePole(c OnePoleCoeffs, buf []float32, channels, frames int, state *OnePoleState) {
	a0, a1, b1 := float32(c.A0), float32(c.A1), float32(c.B1)

	if channels == 1 {
		lx, ly := state.LX, state.LY
		for n := 0; n < frames; n++ {
			xz := denormalZap(buf[n])
			y := a0*xz + a1*lx + b1*ly
			lx, ly = xz, y
			buf[n] = y
		}
		state.LX, state.LY = lx, ly
		return
	}

	lx, ly, rx, ry := state.LX, state.LY, state.RX, state.RY
	for n := 0; n < frames; n++ {
		xzl := denormalZap(buf[n*2])
		yl := a0*xzl + a1*lx + b1*ly
		lx, ly = xzl, yl
		buf[n*2] = yl

		xzr := denormalZap(buf[n*2+1])
		yr := a0*xzr + a1*rx + b1*ry
		rx, ry = xzr, yr
		buf[n*2+1] = yr
	}
	state.LX, state.LY, state.RX, state.RY = lx, ly, rx, ry
}
