package flappy

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it; tests can pass a scripted source.
type Source interface {
	Float64() float64
}

// uniform draws from [lo, hi). A degenerate range returns lo.
func uniform(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}
