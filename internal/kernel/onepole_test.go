package kernel

import "testing"

func TestOnePoleIdentityCoeffsPassesThrough(t *testing.T) {
	c := OnePoleCoeffs{A0: 1, A1: 0, B1: 0}
	buf := []float32{1, 2, 3}
	state := &OnePoleState{}
	OnePole(c, buf, 1, 3, state)
	want := []float32{1, 2, 3}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], v)
		}
	}
}

func TestOnePoleAccumulatesFeedback(t *testing.T) {
	c := OnePoleCoeffs{A0: 1, A1: 0, B1: 1}
	buf := []float32{1, 1, 1}
	state := &OnePoleState{}
	OnePole(c, buf, 1, 3, state)
	want := []float32{1, 2, 3}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], v)
		}
	}
}

func TestOnePoleStereoChannelsIndependent(t *testing.T) {
	c := OnePoleCoeffs{A0: 1, A1: 0, B1: 1}
	buf := []float32{1, 10, 1, 10}
	state := &OnePoleState{}
	OnePole(c, buf, 2, 2, state)
	want := []float32{1, 10, 2, 20}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], v)
		}
	}
}

func TestOnePoleStatePersistsAcrossCalls(t *testing.T) {
	c := OnePoleCoeffs{A0: 1, A1: 0, B1: 1}
	state := &OnePoleState{}

	buf1 := []float32{1, 1}
	OnePole(c, buf1, 1, 2, state)

	buf2 := []float32{1}
	OnePole(c, buf2, 1, 1, state)
	if buf2[0] != 3 {
		t.Fatalf("second call buf[0] = %v, want 3 (carrying y=2 from first call)", buf2[0])
	}
}
