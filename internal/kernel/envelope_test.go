package kernel

import "testing"

func TestEnvelopeZeroDBIsUnity(t *testing.T) {
	tb := NewTables()
	scratch := NewScratch()
	buf := []float32{0.5, -0.5, 0.25, -0.25}
	Envelope(tb, buf, 2, 2, ModPoint{}, scratch)
	want := []float32{0.5, -0.5, 0.25, -0.25}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], v)
		}
	}
}

func TestEnvelopeMonoAppliesConstantAttenuation(t *testing.T) {
	tb := NewTables()
	scratch := NewScratch()
	buf := []float32{1, 1, 1}
	Envelope(tb, buf, 1, 3, ModPoint{Y0: -6, Y1: -6, Y2: -6, Y3: -6}, scratch)
	for i, v := range buf {
		if v < 0.45 || v > 0.55 {
			t.Fatalf("buf[%d] = %v, want ~0.5 (-6dB)", i, v)
		}
	}
}
