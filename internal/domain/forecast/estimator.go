package forecast

// Estimator maps [num_gaps, match_percentage, weighted_difficulty] to a
// baseline day count. Coefficients are fitted offline on historical
// placement outcomes; online inference is deterministic.
type Estimator struct {
	Intercept        float64
	GapWeight        float64
	MatchWeight      float64
	DifficultyWeight float64
}

// DefaultEstimator returns the shipped coefficient set.
func DefaultEstimator() Estimator {
	return Estimator{
		Intercept:        42,
		GapWeight:        5.5,
		MatchWeight:      -0.25,
		DifficultyWeight: 9,
	}
}

func (e Estimator) BaselineDays(numGaps int, matchPct, weightedDifficulty float64) float64 {
	days := e.Intercept +
		e.GapWeight*float64(numGaps) +
		e.MatchWeight*matchPct +
		e.DifficultyWeight*weightedDifficulty
	if days < 0 {
		return 0
	}
	return days
}

// Contributions reports the absolute share each feature adds to the
// baseline, normalized to sum to 1 when any feature is non-zero.
func (e Estimator) Contributions(numGaps int, matchPct, weightedDifficulty float64) map[string]float64 {
	raw := map[string]float64{
		"num_gaps":            abs(e.GapWeight * float64(numGaps)),
		"match_percentage":    abs(e.MatchWeight * matchPct),
		"weighted_difficulty": abs(e.DifficultyWeight * weightedDifficulty),
	}
	total := 0.0
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		return raw
	}
	for k, v := range raw {
		raw[k] = v / total
	}
	return raw
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
