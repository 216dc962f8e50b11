// Package compatibility scores and explains how two zodiac signs match.
//
// Two independent scoring systems live here. Between produces the headline
// score, label and summary; Explain produces the "why this match"
// breakdown. They deliberately use different element and modality tables
// and are not meant to agree numerically.
package compatibility

import (
	"strings"

	"github.com/louisbranch/astrokit/internal/zodiac"
)

// Result is the headline compatibility of a sign pair.
type Result struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

const (
	sameSignScore   = 88
	sameSignLabel   = "High harmony"
	sameSignSummary = "Same-sign match: strong understanding, but watch repeating patterns."
)

// Between scores sign a against sign b.
//
// # Scoring
//
// A sign paired with itself always scores 88 ("High harmony"). Any other
// pair scores element affinity (28..58) plus modality affinity (15..22)
// plus a polarity bonus (15 when one sign is active Fire/Air and the other
// receptive Earth/Water, 10 otherwise), clamped to 0..100.
//
// # Symmetry
//
// Both tables are symmetric and every summary line depends only on the
// unordered pair, so Between(a, b) == Between(b, a).
func Between(a zodiac.Sign, b zodiac.Sign) Result {
	if a == b {
		return Result{
			Score:   sameSignScore,
			Label:   sameSignLabel,
			Summary: sameSignSummary,
		}
	}

	score := clamp(
		scoreElements(a.Element(), b.Element())+
			scoreModalities(a.Modality(), b.Modality())+
			polarityBonus(a.Element(), b.Element()),
		0, 100,
	)

	return Result{
		Score:   score,
		Label:   labelFor(score),
		Summary: summarize(a, b, score),
	}
}

// labelFor bands a score into its headline label.
func labelFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent match"
	case score >= 70:
		return "Great match"
	case score >= 55:
		return "Good potential"
	case score >= 40:
		return "Mixed vibes"
	default:
		return "Challenging"
	}
}

func scoreElements(a zodiac.Element, b zodiac.Element) int {
	switch a {
	case zodiac.Fire:
		switch b {
		case zodiac.Fire:
			return 52
		case zodiac.Air:
			return 58
		case zodiac.Earth:
			return 32
		case zodiac.Water:
			return 28
		}
	case zodiac.Air:
		switch b {
		case zodiac.Air:
			return 50
		case zodiac.Fire:
			return 58
		case zodiac.Earth:
			return 34
		case zodiac.Water:
			return 30
		}
	case zodiac.Earth:
		switch b {
		case zodiac.Earth:
			return 52
		case zodiac.Water:
			return 56
		case zodiac.Fire:
			return 32
		case zodiac.Air:
			return 34
		}
	case zodiac.Water:
		switch b {
		case zodiac.Water:
			return 52
		case zodiac.Earth:
			return 56
		case zodiac.Fire:
			return 28
		case zodiac.Air:
			return 30
		}
	}
	return 0
}

func scoreModalities(a zodiac.Modality, b zodiac.Modality) int {
	switch a {
	case zodiac.Cardinal:
		switch b {
		case zodiac.Cardinal:
			return 18
		case zodiac.Fixed:
			return 20
		case zodiac.Mutable:
			return 22
		}
	case zodiac.Fixed:
		switch b {
		case zodiac.Cardinal:
			return 20
		case zodiac.Fixed:
			return 15
		case zodiac.Mutable:
			return 21
		}
	case zodiac.Mutable:
		switch b {
		case zodiac.Cardinal:
			return 22
		case zodiac.Fixed:
			return 21
		case zodiac.Mutable:
			return 16
		}
	}
	return 0
}

func polarityBonus(a zodiac.Element, b zodiac.Element) int {
	if (a.Active() && b.Receptive()) || (a.Receptive() && b.Active()) {
		return 15
	}
	return 10
}

func summarize(a zodiac.Sign, b zodiac.Sign, score int) string {
	return elementLine(a.Element(), b.Element()) + " " +
		modalityLine(a.Modality(), b.Modality()) + " " +
		closingLine(score)
}

func elementLine(a zodiac.Element, b zodiac.Element) string {
	switch {
	case a == b:
		return "Shared " + strings.ToLower(a.String()) + " element: you naturally understand each other."
	case isPair(a, b, zodiac.Fire, zodiac.Air):
		return "Fire + Air: energetic and playful; momentum comes naturally."
	case isPair(a, b, zodiac.Earth, zodiac.Water):
		return "Earth + Water: stable and supportive; trust builds steadily."
	default:
		return "Different elements: attraction can be strong, but communication is key."
	}
}

func modalityLine(a zodiac.Modality, b zodiac.Modality) string {
	switch {
	case a == b && a == zodiac.Fixed:
		return "Both Fixed: loyal and committed, but avoid power struggles."
	case a == b:
		return "Both " + strings.ToLower(a.String()) + ": you move at a similar pace."
	default:
		return "Different modalities: one initiates, one stabilizes—great balance if respected."
	}
}

func closingLine(score int) string {
	switch {
	case score >= 70:
		return "Lean into strengths and keep small rituals to stay connected."
	case score >= 50:
		return "With honesty and patience, this can grow beautifully."
	default:
		return "This match needs maturity—set clear boundaries and expectations."
	}
}

// isPair reports whether {a, b} is the unordered pair {x, y}.
func isPair[T comparable](a T, b T, x T, y T) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func clamp(value int, lo int, hi int) int {
	return min(max(value, lo), hi)
}
