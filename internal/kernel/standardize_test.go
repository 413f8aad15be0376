package kernel

import "testing"

func TestStandardize44100StereoIsCopy(t *testing.T) {
	src := []float32{0.1, 0.2, 0.3, 0.4}
	dst := make([]float32, 4)
	Standardize(44100, 2, src, 2, dst)
	for i, v := range src {
		if dst[i] != v {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}

func TestStandardize44100MonoDuplicatesChannels(t *testing.T) {
	src := []float32{0.5, -0.5}
	dst := make([]float32, 4)
	Standardize(44100, 1, src, 2, dst)
	want := []float32{0.5, 0.5, -0.5, -0.5}
	for i, v := range want {
		if dst[i] != v {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}

func TestStandardize44100KeepsFrameCount(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	dst := make([]float32, 8)
	Standardize(44100, 1, src, 4, dst)
	// mono->stereo only widens channels; 4 input frames stay 4 output frames.
	if dst[6] != 4 || dst[7] != 4 {
		t.Fatalf("last frame = (%v,%v), want (4,4)", dst[6], dst[7])
	}
}

func TestStandardize22050MonoDoublesFrameCount(t *testing.T) {
	src := []float32{1, 0, 0, 0}
	dst := make([]float32, 16)
	Standardize(22050, 1, src, 4, dst)
	// 4 input frames at 22050 become 8 output frames (S6): every other
	// output frame is the source sample repeated in both channels...
	if dst[0] != 1 || dst[1] != 1 {
		t.Fatalf("frame 0 = (%v,%v), want (1,1)", dst[0], dst[1])
	}
	if dst[4] != 0 || dst[5] != 0 {
		t.Fatalf("frame 1 = (%v,%v), want (0,0)", dst[4], dst[5])
	}
}

func TestStandardize22050StereoPreservesLeftRightSeparation(t *testing.T) {
	src := []float32{1, -1, 1, -1}
	dst := make([]float32, 16)
	Standardize(22050, 2, src, 2, dst)
	if dst[0] != 1 || dst[1] != -1 {
		t.Fatalf("frame 0 = (%v,%v), want (1,-1)", dst[0], dst[1])
	}
}
