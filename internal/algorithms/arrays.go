package algorithms

// ContainsDuplicate reports whether any value appears twice. O(n^2).
func ContainsDuplicate(values []int) bool {
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] == values[j] {
				return true
			}
		}
	}
	return false
}

// FindCommonElements returns every a[i] equal to some b[j], once per
// matching pair. O(len(a) * len(b)).
func FindCommonElements(a, b []int) []int {
	var common []int
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				common = append(common, a[i])
			}
		}
	}
	return common
}

// Fibonacci computes the nth Fibonacci number by naive recursion.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
