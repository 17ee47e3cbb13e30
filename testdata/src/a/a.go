package a

func floats(x, y float64) {
	_ = x / 0 // want "division by literal zero"
	_ = x / 2
	_ = x / y
	_ = x / 0.0
	_ = x / 0x0
	_ = x / (0)
	_ = 0 / y       // want "division by literal zero"
	_ = (x / 0) / 3 // want "division by literal zero"
	_ = 0.0 / y
}

func compound(x float64) float64 {
	x /= 0
	return x
}

func call(f func(float64) float64, x float64) float64 {
	return f(x / 0) // want "division by literal zero"
}
