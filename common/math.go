package common

// Lerp interpolates linearly from a to b; t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
