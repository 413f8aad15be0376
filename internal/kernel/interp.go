package kernel

// lerp linearly interpolates between a and b at fraction mu in [0,1].
func lerp(a, b, mu float64) float64 {
	return a + mu*(b-a)
}

// cubic is the Catmull-Rom-style 4-point interpolation between y1 and y2 at
// fraction mu in [0,1], using the neighbors y0 and y3. The coefficient
// arrangement must be preserved bit-for-bit: downstream reproducibility
// tests compare against it directly.
func cubic(y0, y1, y2, y3, mu float64) float64 {
	a0 := y3 - y2 - y0 + y1
	a1 := y0 - y1 - a0
	a2 := y2 - y0
	a3 := y1
	mu2 := mu * mu
	return a0*mu2*mu + a1*mu2 + a2*mu + a3
}
