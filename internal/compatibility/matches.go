package compatibility

import (
	"sort"

	"github.com/louisbranch/astrokit/internal/zodiac"
)

// DefaultMatchCount is how many partners BestMatches returns.
const DefaultMatchCount = 3

// Match pairs a partner sign with its compatibility result.
type Match struct {
	Sign   zodiac.Sign `json:"sign"`
	Result Result      `json:"result"`
}

// TopMatches scores self against every other sign and returns the n best
// by descending score.
//
// Ties keep zodiac enumeration order (Aries first), so the ranking is
// reproducible. n <= 0 yields an empty slice; n larger than the eleven
// candidates yields all of them.
func TopMatches(self zodiac.Sign, n int) []Match {
	if n <= 0 {
		return []Match{}
	}

	candidates := make([]Match, 0, 11)
	for _, other := range zodiac.Signs() {
		if other == self {
			continue
		}
		candidates = append(candidates, Match{Sign: other, Result: Between(self, other)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Result.Score > candidates[j].Result.Score
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// BestMatches returns the top DefaultMatchCount partners for self.
func BestMatches(self zodiac.Sign) []Match {
	return TopMatches(self, DefaultMatchCount)
}
