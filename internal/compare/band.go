package compare

// Band grades the gap between the two schemes at one sample.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

const (
	LowThreshold    = 1.0
	MediumThreshold = 5.0
)

// Classify grades a pair of gaps by the larger one: low up to 1, medium up
// to 5, high beyond.
func Classify(dp, dd float64) Band {
	worst := max(dp, dd)
	switch {
	case worst <= LowThreshold:
		return BandLow
	case worst <= MediumThreshold:
		return BandMedium
	default:
		return BandHigh
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	default:
		return "unknown"
	}
}
