package calc

// Factorial returns n!. Any n <= 1 yields 1.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// Fibonacci returns the nth Fibonacci number, or n itself when n <= 1.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	prev, cur := 0, 1
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%2 == 0
}

// Choose returns a when cond holds, otherwise b.
func Choose[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Adder returns a function computing (x + z) * 2.
func Adder(x int) func(int) int {
	add := func(y int) int {
		return x + y
	}
	return func(z int) int {
		return add(z) * 2
	}
}

// Mix folds x and y into a starting value, walks an alternating sum over [0, z)
// and finally adjusts the result by its remainder modulo 3.
func Mix(x, y, z int) int {
	result := 0

	switch {
	case x > 0:
		if y > 0 {
			result += x * y
		} else if y < 0 {
			result -= x * -y
		}
	case x < 0:
		result = -x
	}

	for i := 0; i < z; i++ {
		if i%2 == 0 {
			result += i
		} else {
			result -= i
		}
	}

	// Remainder is truncated: a negative result lands on 0 or the default case, never 1.
	switch result % 3 {
	case 0:
		return result * 2
	case 1:
		return result + 1
	default:
		return result - 1
	}
}
