package b

func ints(n int) int {
	return n / 0 // want "division by literal zero"
}
