package kernel

import "testing"

func TestLerpEndpoints(t *testing.T) {
	if v := lerp(2, 8, 0); v != 2 {
		t.Fatalf("lerp at mu=0 got %v want 2", v)
	}
	if v := lerp(2, 8, 1); v != 8 {
		t.Fatalf("lerp at mu=1 got %v want 8", v)
	}
	if v := lerp(2, 8, 0.5); v != 5 {
		t.Fatalf("lerp at mu=0.5 got %v want 5", v)
	}
}

func TestCubicPassesThroughInnerPoints(t *testing.T) {
	// At mu=0 the curve must equal y1, at mu=1 it must equal y2, regardless
	// of the outer neighbors y0/y3.
	if v := cubic(10, 1, 2, -5, 0); v != 1 {
		t.Fatalf("cubic at mu=0 got %v want y1=1", v)
	}
	if v := cubic(10, 1, 2, -5, 1); v != 2 {
		t.Fatalf("cubic at mu=1 got %v want y2=2", v)
	}
}

func TestCubicMidpoint(t *testing.T) {
	// With the coefficient set this engine uses (a0=y3-y2-y0+y1; a1=y0-y1-a0;
	// a2=y2-y0; a3=y1), cubic(0,1,1,0,0.5) evaluates to 1.25, not the 1.125
	// a standard Catmull-Rom tangent set would give for the same inputs.
	got := cubic(0, 1, 1, 0, 0.5)
	if got != 1.25 {
		t.Fatalf("cubic(0,1,1,0,0.5) got %v want 1.25", got)
	}
}

func TestCubicFlatLineIsIdentity(t *testing.T) {
	for _, mu := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if v := cubic(3, 3, 3, 3, mu); v != 3 {
			t.Fatalf("cubic on flat line at mu=%v got %v want 3", mu, v)
		}
	}
}
