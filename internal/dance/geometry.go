package dance

import "math"

// NormalizeFacing wraps an angle into [0, 360).
func NormalizeFacing(deg float64) float64 {
	m := math.Mod(deg, 360.0)
	if m < 0 {
		m += 360.0
	}
	return m
}

// Distance is the Euclidean distance between two poses.
func Distance(a, b Pose) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint is the point halfway between two poses.
func Midpoint(a, b Pose) (float64, float64) {
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// AngleFromTo is the facing from pose a toward pose b in degrees,
// 0=north, 90=east. Note the atan2 argument order: x is first, so the
// convention stays clockwise-from-north. A zero-distance pair yields 0.
func AngleFromTo(a, b Pose) float64 {
	return NormalizeFacing(math.Atan2(b.X-a.X, b.Y-a.Y) * 180.0 / math.Pi)
}
