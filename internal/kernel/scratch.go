package kernel

// PCM16ScratchLen is the capacity, in int16 samples (not frames), of the
// WAV adapters' scratch buffer. WriteWavBytes/ReadWavBytes chunk their work
// to PCM16ScratchLen/channels frames per pass so a chunk never exceeds it.
const PCM16ScratchLen = 16384

// ModScratchLen is the capacity of the modulation-curve expansion scratch:
// the largest block length a single call is expected to expand in one pass.
const ModScratchLen = 16384

// Scratch is the fixed-capacity arena used by the modulation expander and
// the WAV byte adapters. The source keeps this as process-wide mutable
// state; here it is owned per-caller and threaded through explicitly so
// primitives stay reentrant-safe as long as distinct callers use distinct
// Scratch values. A single Scratch must not be used concurrently — the
// engine's single-threaded, cooperative-call model assumes that.
type Scratch struct {
	mod   [ModScratchLen]float32
	pcm16 [PCM16ScratchLen]int16
}

// NewScratch allocates a zeroed scratch arena.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Mod returns the modulation-curve scratch slice, truncated to n samples.
// Panics if n exceeds ModScratchLen, matching the fixed-capacity contract.
func (s *Scratch) Mod(n int) []float32 {
	return s.mod[:n]
}

// PCM16 returns the int16 WAV scratch slice, truncated to n samples.
func (s *Scratch) PCM16(n int) []int16 {
	return s.pcm16[:n]
}
