package kernel

// Envelope expands pt into a block-length dB curve and applies it as a
// linear power multiplier to buf. The curve has one value per frame; a
// single mono curve modulates every channel of that frame in lock-step.
func Envelope(t *Tables, buf []float32, channels, frames int, pt ModPoint, scratch *Scratch) {
	curve := scratch.Mod(frames)
	ExpandCurve(curve, pt, frames)

	for f := 0; f < frames; f++ {
		pow := float32(t.DB(float64(curve[f])))
		if channels == 1 {
			buf[f] *= pow
			continue
		}
		buf[f*2] *= pow
		buf[f*2+1] *= pow
	}
}
