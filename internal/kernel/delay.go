package kernel

// DelayParams are the per-call parameters for Delay.
type DelayParams struct {
	Length   int // delay length in frames
	DryMix   float64
	WetMix   float64
	Feedback float64
}

// DelayState is the persistent per-voice delay-line state: a ring buffer
// sized Length*channels floats, plus a cursor. The source physically
// rotates the ring after every call so a host reading raw memory always
// sees the oldest sample at index 0; here the same observable contract
// (the next call picks up exactly where the last one left off, cycling
// correctly through the ring) is reproduced with a persisted cursor
// instead of a per-call memmove — the optimization the source's design
// notes call out as an acceptable deviation, since nothing besides the
// processed output samples is part of the contract.
type DelayState struct {
	Ring   []float32 // length Length*channels
	cursor int
}

// NewDelayState allocates a zeroed ring sized for length frames of the
// given channel count.
func NewDelayState(length, channels int) *DelayState {
	return &DelayState{Ring: make([]float32, length*channels)}
}

// Delay applies a feedback delay (echo) to buf in place, flat over
// channels: dry/wet mix plus feedback into the ring.
func Delay(p DelayParams, buf []float32, channels, frames int, st *DelayState) {
	dry := float32(p.DryMix)
	wet := float32(p.WetMix)
	fb := float32(p.Feedback)
	ringLen := len(st.Ring)
	if ringLen == 0 {
		return
	}

	n := frames * channels
	for i := 0; i < n; i++ {
		if st.cursor >= ringLen {
			st.cursor = 0
		}
		echo := st.Ring[st.cursor]
		x := buf[i]
		st.Ring[st.cursor] = x + echo*fb
		buf[i] = denormalZap(x*dry + echo*wet)
		st.cursor++
	}
}
