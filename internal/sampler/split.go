package sampler

// Split cuts seq into contiguous train, validation and test slices. The
// first two sizes are floor(len*ratio); test takes the remainder. Sizes are
// clamped so ratios summing past 1 shorten validation and test instead of
// panicking.
func Split[T any](seq []T, trainRatio, valRatio float64) (train, val, test []T) {
	n := len(seq)
	trainEnd := clamp(int(float64(n)*trainRatio), 0, n)
	valEnd := clamp(trainEnd+int(float64(n)*valRatio), trainEnd, n)
	return seq[:trainEnd], seq[trainEnd:valEnd], seq[valEnd:]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
