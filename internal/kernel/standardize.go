package kernel

// Standardize normalizes src (frames frames, sampled at srcRate Hz with the
// given channel count) into dst as 44.1kHz stereo. Supported combinations
// are (44100,1), (44100,2), (22050,1), (22050,2); any other combination is
// undefined behavior (the caller's responsibility to avoid, per the
// source's contract).
//
// Frame-count note: only the 22050 sources double the frame count (they
// are being upsampled 2x in time); 44100 sources keep the same frame count
// and are only widened to stereo. Doubling frame count on an already-44100
// source would change playback duration, which "standardize" must not do.
// Callers that need headroom for either case should size dst for 2*frames
// stereo frames (4*frames floats), matching the worst case.
func Standardize(srcRate, channels int, src []float32, frames int, dst []float32) {
	switch {
	case srcRate == 44100 && channels == 2:
		copy(dst[:frames*2], src[:frames*2])

	case srcRate == 44100 && channels == 1:
		for n := 0; n < frames; n++ {
			s := src[n]
			dst[n*2] = s
			dst[n*2+1] = s
		}

	case srcRate == 22050 && channels == 1:
		get := func(idx int) float64 {
			if idx < 0 {
				idx = 0
			} else if idx >= frames {
				idx = frames - 1
			}
			return float64(src[idx])
		}
		for n := 0; n < frames; n++ {
			s := float32(get(n))
			base := n * 4
			dst[base] = s
			dst[base+1] = s
			mid := float32(cubic(get(n-1), get(n), get(n+1), get(n+2), 0.5))
			dst[base+2] = mid
			dst[base+3] = mid
		}

	case srcRate == 22050 && channels == 2:
		get := func(idx, ch int) float64 {
			if idx < 0 {
				idx = 0
			} else if idx >= frames {
				idx = frames - 1
			}
			return float64(src[idx*2+ch])
		}
		for n := 0; n < frames; n++ {
			base := n * 4
			dst[base] = float32(get(n, 0))
			dst[base+1] = float32(get(n, 1))
			dst[base+2] = float32(cubic(get(n-1, 0), get(n, 0), get(n+1, 0), get(n+2, 0), 0.5))
			dst[base+3] = float32(cubic(get(n-1, 1), get(n, 1), get(n+1, 1), get(n+2, 1), 0.5))
		}
	}
}
