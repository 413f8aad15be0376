package kernel

import "math"

// WavetableSettings is the mutable per-voice state for WavetableIn. Phase
// and PhaseAdd are fractions of TableSize (a multiply by TableSize gives an
// index into the table); PhaseReset is an absolute table-index offset, not
// a fraction — a value of -1 disables looping.
type WavetableSettings struct {
	TableSize  int
	Phase      float64
	PhaseAdd   float64
	PhaseReset float64
	Y1, Y2     float64 // pitch-bend endpoints in semitones, linear across the block
}

// WavetableIn scans src (a looping wavetable of TableSize frames, requiring
// one extra lookahead frame) using fractional phase tracking and continuous
// pitch bend from Y1 to Y2 across the block. It writes up to frames output
// frames into dst and returns how many were actually written: fewer than
// frames only when PhaseReset == -1 (looping disabled) and the table runs
// out mid-block, at which point the operation ends immediately.
//
// After the call, ws.Phase holds the updated phase for the next block.
func WavetableIn(t *Tables, dst []float32, channels, frames int, src []float32, ws *WavetableSettings) int {
	T := float64(ws.TableSize)
	p := ws.Phase * T
	a := ws.PhaseAdd * T
	step := 1.0 / float64(frames)
	mu := 0.0

	written := 0
	for f := 0; f < frames; f++ {
		for p >= T {
			if ws.PhaseReset == -1 {
				ws.Phase = p / T
				return written
			}
			p = p - T + ws.PhaseReset
		}

		i := tableIndex(p, channels)
		frac := p - float64(i)
		writeOscFrame(dst, src, f, channels, i, frac)

		b := lerp(ws.Y1, ws.Y2, mu)
		mu += step
		p += a * t.ShiftToFreq(b)
		written++
	}

	ws.Phase = p / T
	return written
}

// WaveModSettings is the per-voice state for the older WaveModIn variant.
type WaveModSettings struct {
	TableSize int
	Phase     float64
	PhaseAdd  float64
}

// WaveModIn is the older wavetable variant: it takes an externally supplied
// per-sample pitch curve (one semitone-shift value per output frame)
// instead of linearly interpolated endpoints, never loops, and terminates
// the block early once src is exhausted. Returns frames actually written.
func WaveModIn(t *Tables, dst []float32, channels, frames int, src []float32, ws *WaveModSettings, pitchCurve []float64) int {
	T := float64(ws.TableSize)
	p := ws.Phase * T
	a := ws.PhaseAdd * T

	written := 0
	for f := 0; f < frames; f++ {
		if p >= T {
			break
		}

		i := tableIndex(p, channels)
		frac := p - float64(i)
		writeOscFrame(dst, src, f, channels, i, frac)

		p += a * t.ShiftToFreq(pitchCurve[f])
		written++
	}

	ws.Phase = p / T
	return written
}

func tableIndex(p float64, channels int) int {
	if channels == 1 {
		return int(math.Floor(p))
	}
	return int(math.Floor(p/float64(channels))) * channels
}

func writeOscFrame(dst, src []float32, f, channels, i int, frac float64) {
	if channels == 1 {
		dst[f] = float32(lerp(float64(src[i]), float64(src[i+1]), frac))
		return
	}
	l := lerp(float64(src[i]), float64(src[i+2]), frac)
	r := lerp(float64(src[i+1]), float64(src[i+3]), frac)
	dst[f*2] = float32(l)
	dst[f*2+1] = float32(r)
}
