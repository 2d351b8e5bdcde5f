package utils

const (
	NODETOL = 1.e-12
)

// IsPowerOfTwo reports whether n is 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
