package kernel

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteBytes appends frames*channels*4 bytes of native float32
// little-endian samples from buf to w.
func WriteBytes(w io.Writer, buf []float32, channels, frames int) error {
	n := frames * channels
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(buf[i]))
	}
	_, err := w.Write(out)
	return err
}

// WriteWavBytes converts buf to 16-bit signed little-endian PCM and writes
// it to w, in chunks bounded by the scratch arena's capacity. Saturation
// to [-1,1] is the caller's responsibility (apply Clip first); values
// outside that range wrap per normal int16 conversion rules.
func WriteWavBytes(w io.Writer, buf []float32, channels, frames int, scratch *Scratch) error {
	total := frames * channels
	chunkFrames := PCM16ScratchLen / channels
	out := make([]byte, 0, chunkFrames*channels*2)

	for start := 0; start < total; {
		n := total - start
		if n > chunkFrames*channels {
			n = chunkFrames * channels
		}
		pcm := scratch.PCM16(n)
		for i := 0; i < n; i++ {
			pcm[i] = floatToPCM16(buf[start+i])
		}
		out = out[:0]
		for i := 0; i < n; i++ {
			out = append(out, byte(pcm[i]), byte(uint16(pcm[i])>>8))
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
		start += n
	}
	return nil
}

func floatToPCM16(s float32) int16 {
	v := float64(s)*32768 + 0.5
	return int16(v)
}

// ReadWavBytes reads frames*channels int16 samples from r (in chunks
// bounded by the scratch arena's capacity) and converts each to a float
// via sample * 2^(-bitDepth), writing the result into dst. bitDepth is
// taken as supplied by the caller; 15 is the typical value for normalized
// 16-bit PCM.
func ReadWavBytes(dst []float32, r io.Reader, bitDepth, channels, frames int, scratch *Scratch) error {
	total := frames * channels
	scale := float32(math.Pow(2, -float64(bitDepth)))
	chunkFrames := PCM16ScratchLen / channels
	raw := make([]byte, 0, chunkFrames*channels*2)

	for start := 0; start < total; {
		n := total - start
		if n > chunkFrames*channels {
			n = chunkFrames * channels
		}
		raw = raw[:n*2]
		if _, err := io.ReadFull(r, raw); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			v := int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
			dst[start+i] = float32(v) * scale
		}
		start += n
	}
	return nil
}
