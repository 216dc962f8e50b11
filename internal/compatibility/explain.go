package compatibility

import (
	"fmt"

	"github.com/louisbranch/astrokit/internal/zodiac"
)

// Explanation is the "why this match" breakdown of a sign pair.
type Explanation struct {
	ElementScore  int      `json:"elementScore"`
	ModalityScore int      `json:"modalityScore"`
	OverallHint   string   `json:"overallHint"`
	Bullets       []string `json:"bullets"`
}

// Explain breaks a sign pair down into element and modality scores, an
// overall hint and three bullets, always in element, modality, archetype
// order. Its scores come from their own tables, independent of Between.
func Explain(a zodiac.Sign, b zodiac.Sign) Explanation {
	elementScore := explainElements(a.Element(), b.Element())
	modalityScore := explainModalities(a.Modality(), b.Modality())

	return Explanation{
		ElementScore:  elementScore,
		ModalityScore: modalityScore,
		OverallHint:   overallHint(elementScore, modalityScore),
		Bullets: []string{
			elementBullet(a.Element(), b.Element(), elementScore),
			modalityBullet(a.Modality(), b.Modality(), modalityScore),
			archetypeBullet(a, b),
		},
	}
}

func overallHint(elementScore int, modalityScore int) string {
	switch {
	case elementScore >= 80 && modalityScore >= 70:
		return "Strong natural flow + good day-to-day rhythm."
	case elementScore >= 80:
		return "Great chemistry — align routines to avoid friction."
	case modalityScore >= 75:
		return "You work well as a team — keep communication clear."
	case elementScore <= 45 && modalityScore <= 45:
		return "High contrast — can be growth-oriented if both are intentional."
	case elementScore <= 45:
		return "Different emotional languages — clarity helps."
	default:
		return "Balanced match — depends on effort and timing."
	}
}

func explainElements(a zodiac.Element, b zodiac.Element) int {
	switch {
	case a == b:
		return 75
	case isPair(a, b, zodiac.Fire, zodiac.Air), isPair(a, b, zodiac.Earth, zodiac.Water):
		return 90
	case isPair(a, b, zodiac.Fire, zodiac.Earth), isPair(a, b, zodiac.Air, zodiac.Water):
		return 60
	case isPair(a, b, zodiac.Fire, zodiac.Water), isPair(a, b, zodiac.Air, zodiac.Earth):
		return 40
	default:
		return 55
	}
}

func explainModalities(a zodiac.Modality, b zodiac.Modality) int {
	if a != b {
		return 80
	}
	switch a {
	case zodiac.Cardinal:
		return 70
	case zodiac.Fixed:
		return 60
	case zodiac.Mutable:
		return 75
	default:
		return 80
	}
}

func elementBullet(a zodiac.Element, b zodiac.Element, score int) string {
	var tone string
	switch {
	case score >= 85:
		tone = "Highly compatible"
	case score >= 70:
		tone = "Naturally compatible"
	case score >= 55:
		tone = "Mixed but workable"
	default:
		tone = "Challenging mix"
	}

	var detail string
	switch {
	case isPair(a, b, zodiac.Fire, zodiac.Air):
		detail = "Air fuels Fire — energy + ideas combine well."
	case isPair(a, b, zodiac.Earth, zodiac.Water):
		detail = "Water nourishes Earth — emotional support + stability."
	case isPair(a, b, zodiac.Fire, zodiac.Earth):
		detail = "Fire pushes forward; Earth prefers steady steps — align pace."
	case isPair(a, b, zodiac.Air, zodiac.Water):
		detail = "Air thinks; Water feels — translate emotions into words."
	case isPair(a, b, zodiac.Fire, zodiac.Water):
		detail = "Fire can overwhelm Water; Water can cool Fire — needs balance."
	case isPair(a, b, zodiac.Air, zodiac.Earth):
		detail = "Air changes quickly; Earth is practical — respect each other’s style."
	default:
		detail = "Different energies require a bit more intention."
	}

	return fmt.Sprintf("Element harmony: %s (%s + %s). %s", tone, a, b, detail)
}

func modalityBullet(a zodiac.Modality, b zodiac.Modality, score int) string {
	var tone string
	switch {
	case score >= 80:
		tone = "Complementary"
	case score >= 70:
		tone = "Mostly aligned"
	case score >= 55:
		tone = "Some friction"
	default:
		tone = "Often clashes"
	}

	detail := "Different styles can balance: one initiates, one stabilizes, one adapts."
	if a == b {
		switch a {
		case zodiac.Cardinal:
			detail = "Both like to lead — decide how you make decisions."
		case zodiac.Fixed:
			detail = "Both are loyal but stubborn — soften rigidity."
		case zodiac.Mutable:
			detail = "Both adapt easily — keep long-term consistency."
		}
	}

	return fmt.Sprintf("Modality dynamic: %s (%s + %s). %s", tone, a, b, detail)
}

func archetypeBullet(a zodiac.Sign, b zodiac.Sign) string {
	switch {
	case zodiac.Opposite(a) == b:
		return "Archetype: Opposite signs often bring strong attraction + growth through contrast."
	case a.Element() == b.Element():
		return "Archetype: Same-element signs share a natural vibe and “get” each other quickly."
	default:
		return "Archetype: Different archetypes — success comes from curiosity and communication."
	}
}
