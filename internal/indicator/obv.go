package indicator

// OBV computes on-balance volume: a cumulative sum of volume signed by
// each bar's close-to-close direction.
func OBV(closes, volumes []float64) (float64, bool) {
	if len(closes) < 2 || len(volumes) != len(closes) {
		return 0, false
	}
	obv := 0.0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv += volumes[i]
		case closes[i] < closes[i-1]:
			obv -= volumes[i]
		}
	}
	return obv, true
}
