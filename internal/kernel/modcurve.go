package kernel

// ModPoint is a 4-control-point cubic spline segment: the curve runs from
// y1 toward y2, using y0 and y3 as the neighboring control points that
// shape the curve's tangents at the endpoints.
type ModPoint struct {
	Y0, Y1, Y2, Y3 float64
}

// ExpandCurve renders n samples of pt into dst (which must have length >= n),
// stepping mu from 0 by 1/n. It picks the cheapest fast path that produces
// the same result as the full cubic evaluation:
//
//   - all four control points zero: memset-style fill with 0.
//   - all four control points equal: fill with that value.
//   - y0==y1 and y2==y3: linear interpolation from y1 to y2.
//   - otherwise: full cubic per sample.
func ExpandCurve(dst []float32, pt ModPoint, n int) {
	switch {
	case pt.Y0 == 0 && pt.Y1 == 0 && pt.Y2 == 0 && pt.Y3 == 0:
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
	case pt.Y0 == pt.Y1 && pt.Y1 == pt.Y2 && pt.Y2 == pt.Y3:
		v := float32(pt.Y1)
		for i := 0; i < n; i++ {
			dst[i] = v
		}
	case pt.Y0 == pt.Y1 && pt.Y2 == pt.Y3:
		step := 1.0 / float64(n)
		mu := 0.0
		for i := 0; i < n; i++ {
			dst[i] = float32(lerp(pt.Y1, pt.Y2, mu))
			mu += step
		}
	default:
		step := 1.0 / float64(n)
		mu := 0.0
		for i := 0; i < n; i++ {
			dst[i] = float32(cubic(pt.Y0, pt.Y1, pt.Y2, pt.Y3, mu))
			mu += step
		}
	}
}
