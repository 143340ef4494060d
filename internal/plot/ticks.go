package plot

// TickStep returns the x-tick subsampling step for n points: n/maxTicks,
// clamped to 1 so short series show every tick instead of a zero step.
func TickStep(n, maxTicks int) int {
	if maxTicks < 1 {
		maxTicks = 1
	}
	step := n / maxTicks
	if step < 1 {
		step = 1
	}
	return step
}

// Ticks returns every step-th value of x starting at x[0].
func Ticks(x []float64, maxTicks int) []float64 {
	if len(x) == 0 {
		return nil
	}
	step := TickStep(len(x), maxTicks)
	ticks := make([]float64, 0, (len(x)+step-1)/step)
	for i := 0; i < len(x); i += step {
		ticks = append(ticks, x[i])
	}
	return ticks
}
