// Package sentiment scores headlines against fixed bullish/bearish lexicons.
//
// Matching is by substring, not by word: "up" also hits "update" and "down"
// hits "markdown". Existing scores depend on this.
package sentiment

import (
	"math"
	"strings"
)

// Neutral is the index reported when no keyword matches at all.
const Neutral = 50

var (
	positiveTerms = []string{
		"gain", "bull", "bullish", "surge", "rally", "up", "moon",
		"pump", "positive", "beat", "record", "growth", "increase", "win",
	}
	negativeTerms = []string{
		"drop", "down", "bear", "bearish", "dump", "crash", "loss",
		"decline", "sell", "negative", "risk", "liquidation", "fall", "slump",
	}
)

func PositiveTerms() []string { return append([]string(nil), positiveTerms...) }
func NegativeTerms() []string { return append([]string(nil), negativeTerms...) }

// Tally is the raw keyword count over a set of headlines.
type Tally struct {
	Score        int
	PositiveHits int
	NegativeHits int
}

// Count lower-cases every headline and counts each lexicon term it contains.
// A headline may hit several terms from both lexicons.
func Count(headlines []string) Tally {
	var t Tally
	for _, h := range headlines {
		low := strings.ToLower(h)
		for _, term := range positiveTerms {
			if strings.Contains(low, term) {
				t.Score++
				t.PositiveHits++
			}
		}
		for _, term := range negativeTerms {
			if strings.Contains(low, term) {
				t.Score--
				t.NegativeHits++
			}
		}
	}
	return t
}

// Index maps a tally onto [0,100] with 50 as neutral.
func (t Tally) Index() int {
	total := t.PositiveHits + t.NegativeHits
	if total == 0 {
		return Neutral
	}
	idx := int(math.Round(Neutral + float64(t.Score)/float64(total)*Neutral))
	if idx < 0 {
		return 0
	}
	if idx > 100 {
		return 100
	}
	return idx
}
