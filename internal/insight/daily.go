// Package insight generates the daily insight card and serves the static
// trait, life-path and personal-year catalogs shown next to it.
package insight

import (
	"fmt"
	"strings"

	"github.com/louisbranch/astrokit/internal/astro"
	"github.com/louisbranch/astrokit/internal/random"
	"github.com/louisbranch/astrokit/internal/zodiac"
)

// Daily is one day's insight card.
type Daily struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Focus   string `json:"focus"`
}

// GenerateDaily picks the focus and message for profile on dateKey
// (YYYY-MM-DD). dayOfWeek is the short weekday shown in the title.
//
// The same profile and dateKey always produce the same card; dayOfWeek
// only affects the title.
func GenerateDaily(profile astro.Profile, dateKey string, dayOfWeek string) Daily {
	seed := random.StableSeed(dailySeedKey(profile, dateKey))

	focusPool := focusPool(profile.PersonalYear)
	messagePool := messagePool(profile)

	return Daily{
		Title:   fmt.Sprintf("Today • %s • %s", dayOfWeek, dateKey),
		Message: messagePool[(seed/7)%len(messagePool)],
		Focus:   focusPool[seed%len(focusPool)],
	}
}

func dailySeedKey(profile astro.Profile, dateKey string) string {
	return fmt.Sprintf("%s|%s|%d|%d", dateKey, profile.Zodiac.Name(), profile.LifePath, profile.PersonalYear)
}

// ShareText renders the card as the plain text handed to share sheets.
func ShareText(profile astro.Profile, daily Daily) string {
	var b strings.Builder
	b.WriteString("AstroKit Insight\n")
	b.WriteString(daily.Title + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Zodiac: %s (%s)\n", profile.Zodiac.DisplayName(), profile.Zodiac.Element())
	fmt.Fprintf(&b, "Life Path: %d • Personal Year: %d\n", profile.LifePath, profile.PersonalYear)
	b.WriteString("\n")
	b.WriteString(daily.Message + "\n")
	b.WriteString("\n")
	b.WriteString("Focus: " + daily.Focus + "\n")
	return strings.TrimSpace(b.String())
}

func focusPool(personalYear int) []string {
	switch personalYear {
	case 1:
		return []string{"Start the thing you keep delaying.", "Make a bold first move.", "Begin small—begin today."}
	case 2:
		return []string{"Choose patience over pressure.", "Strengthen one key relationship.", "Listen first, respond second."}
	case 3:
		return []string{"Create, share, and be seen.", "Make it fun again.", "Your voice is your advantage."}
	case 4:
		return []string{"Build one system that saves time.", "Consistency beats intensity.", "Finish what you started."}
	case 5:
		return []string{"Say yes to a fresh experience.", "Change one habit.", "Stay flexible—don’t overcommit."}
	case 6:
		return []string{"Take care of home and health.", "Support someone (with boundaries).", "Stability is your power."}
	case 7:
		return []string{"Reduce noise and reflect.", "Learn something deeper.", "Protect your energy."}
	case 8:
		return []string{"Make a strategic money move.", "Lead with clarity.", "Choose results over drama."}
	case 9:
		return []string{"Close an unfinished loop.", "Let go of what drains you.", "Completion creates freedom."}
	default:
		return []string{"Keep it simple and steady.", "Do less, better.", "Small wins compound."}
	}
}

func messagePool(profile astro.Profile) []string {
	element := elementLine(profile.Zodiac.Element())
	lifePath := lifePathLine(profile.LifePath)
	return []string{
		element + " " + lifePath,
		lifePath + " " + element,
		"Today is about precision + pace. " + element,
		"One clear decision beats ten half-decisions. " + lifePath,
	}
}

func elementLine(e zodiac.Element) string {
	switch e {
	case zodiac.Fire:
		return "Lead with courage, but avoid rushing the details."
	case zodiac.Earth:
		return "Ground your choices—slow progress is still progress."
	case zodiac.Air:
		return "Communicate clearly; the right words open doors."
	case zodiac.Water:
		return "Trust intuition—protect your emotional bandwidth."
	default:
		return "Stay balanced and focused."
	}
}

func lifePathLine(lifePath int) string {
	switch lifePath {
	case 1:
		return "Take initiative—your direction sets the tone."
	case 2:
		return "Harmony matters, but don’t abandon boundaries."
	case 3:
		return "Creativity is your shortcut today."
	case 4:
		return "Discipline becomes your superpower."
	case 5:
		return "Freedom is good—avoid impulsive decisions."
	case 6:
		return "Care deeply, but don’t overcarry."
	case 7:
		return "Seek truth; limit distractions."
	case 8:
		return "Think long-term; act strategically."
	case 9:
		return "Release what drains you; keep what grows you."
	case 11:
		return "Intuition is loud—listen carefully."
	case 22:
		return "Build something real from the vision."
	case 33:
		return "Lead with compassion; protect your boundaries."
	default:
		return "Stay aligned with your values."
	}
}
