package kernel

import "testing"

func wavetableFixture() (*Tables, []float32) {
	return NewTables(), []float32{0, 1, 2, 3, 0}
}

func TestWavetableInNoPitchBendTracksTableLinearly(t *testing.T) {
	tb, table := wavetableFixture()
	ws := &WavetableSettings{TableSize: 4, Phase: 0, PhaseAdd: 0.25, PhaseReset: 0, Y1: 0, Y2: 0}
	dst := make([]float32, 4)
	n := WavetableIn(tb, dst, 1, 4, table, ws)
	if n != 4 {
		t.Fatalf("written = %d, want 4", n)
	}
	want := []float32{0, 1, 2, 3}
	for i, v := range want {
		if dst[i] != v {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
	if ws.Phase != 1.0 {
		t.Fatalf("final phase = %v, want 1.0", ws.Phase)
	}
}

func TestWavetableInPhaseContinuityAcrossSplitBlocks(t *testing.T) {
	tb, table := wavetableFixture()

	wsWhole := &WavetableSettings{TableSize: 4, Phase: 0, PhaseAdd: 0.25, PhaseReset: 0, Y1: 0, Y2: 0}
	whole := make([]float32, 4)
	WavetableIn(tb, whole, 1, 4, table, wsWhole)

	wsSplit := &WavetableSettings{TableSize: 4, Phase: 0, PhaseAdd: 0.25, PhaseReset: 0, Y1: 0, Y2: 0}
	split := make([]float32, 4)
	WavetableIn(tb, split[:2], 1, 2, table, wsSplit)
	WavetableIn(tb, split[2:], 1, 2, table, wsSplit)

	for i := range whole {
		if whole[i] != split[i] {
			t.Fatalf("sample %d diverges: whole=%v split=%v", i, whole[i], split[i])
		}
	}
	if wsWhole.Phase != wsSplit.Phase {
		t.Fatalf("final phase diverges: whole=%v split=%v", wsWhole.Phase, wsSplit.Phase)
	}
}

func TestWavetableInLoopingDisabledStopsEarly(t *testing.T) {
	tb, table := wavetableFixture()
	ws := &WavetableSettings{TableSize: 4, Phase: 0, PhaseAdd: 0.25, PhaseReset: -1, Y1: 0, Y2: 0}
	dst := make([]float32, 8)
	n := WavetableIn(tb, dst, 1, 8, table, ws)
	if n != 4 {
		t.Fatalf("written = %d, want 4 (table exhausted mid-block)", n)
	}
}

func TestWaveModInStopsWhenTableExhausted(t *testing.T) {
	tb := NewTables()
	table := []float32{0, 1, 2, 3, 0}
	ws := &WaveModSettings{TableSize: 4, Phase: 0, PhaseAdd: 0.25}
	pitch := make([]float64, 6)
	dst := make([]float32, 6)
	n := WaveModIn(tb, dst, 1, 6, table, ws, pitch)
	if n != 4 {
		t.Fatalf("written = %d, want 4", n)
	}
	want := []float32{0, 1, 2, 3}
	for i, v := range want {
		if dst[i] != v {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}
