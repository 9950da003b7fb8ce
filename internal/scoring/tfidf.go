package scoring

import (
	"math"

	"github.com/gopinath/resume-tailor/internal/types"
)

// commonnessDamping suppresses keywords that show up in more than 80% of
// tracked JDs: a term every posting asks for separates candidates less than
// one only some postings ask for.
const (
	commonnessThreshold = 0.8
	commonnessDamping   = 0.3
)

// ComputeTFIDFWeights derives per-keyword weights from the accumulated
// KeywordFrequency history. Each keyword gets tf * log(1+count), damped when
// the keyword is near-universal, then the map is normalized to sum to 1.
// The formula is monotone in rarity-adjusted relevance and always finite.
func ComputeTFIDFWeights(freqs []types.KeywordFrequency, totalJDs int) map[string]float64 {
	if totalJDs < 1 {
		totalJDs = 1
	}

	weights := make(map[string]float64, len(freqs))
	total := 0.0
	for _, f := range freqs {
		if f.Keyword == "" || f.JDCount <= 0 {
			continue
		}
		tf := float64(f.JDCount) / float64(totalJDs)
		if tf > 1 {
			// Counters can run ahead of the run count when history was
			// recorded without tracking; a keyword is never in more than
			// every JD.
			tf = 1
		}
		w := tf * math.Log(1+float64(f.JDCount))
		if tf > commonnessThreshold {
			w *= 1.0 - tf*commonnessDamping
		}
		if w < 0 {
			w = 0
		}
		weights[f.Keyword] = w
		total += w
	}

	if total == 0 {
		return weights
	}
	for kw, w := range weights {
		weights[kw] = w / total
	}
	return weights
}
