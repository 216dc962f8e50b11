package kundli

import "strings"

// HouseMeaning describes what a house governs.
type HouseMeaning struct {
	Title    string   `json:"title"`
	Themes   string   `json:"themes"`
	Keywords []string `json:"keywords"`
}

// HouseMeaningFor returns the meaning of house 1..12. Other numbers get a
// generic entry with no keywords.
func HouseMeaningFor(house int) HouseMeaning {
	switch house {
	case 1:
		return HouseMeaning{"Self / Body", "Personality, vitality, appearance, approach to life.", []string{"Identity", "Health", "Confidence"}}
	case 2:
		return HouseMeaning{"Wealth / Family", "Money, speech, values, family support, food habits.", []string{"Finances", "Speech", "Values"}}
	case 3:
		return HouseMeaning{"Courage / Skills", "Effort, courage, communication, siblings, short travel.", []string{"Courage", "Skills", "Siblings"}}
	case 4:
		return HouseMeaning{"Home / Mother", "Home, mother, comfort, property, inner peace.", []string{"Home", "Mother", "Property"}}
	case 5:
		return HouseMeaning{"Creativity / Children", "Creativity, education, romance, children, intelligence.", []string{"Creativity", "Education", "Love"}}
	case 6:
		return HouseMeaning{"Health / Service", "Diseases, debts, service, routines, competitors.", []string{"Health", "Work", "Discipline"}}
	case 7:
		return HouseMeaning{"Partnership", "Marriage, business partnerships, contracts, public image.", []string{"Marriage", "Partnerships", "Contracts"}}
	case 8:
		return HouseMeaning{"Transformation", "Sudden events, longevity, secrets, research, inheritance.", []string{"Change", "Mystery", "Longevity"}}
	case 9:
		return HouseMeaning{"Fortune / Dharma", "Luck, higher learning, mentors, spirituality, long travel.", []string{"Luck", "Dharma", "Wisdom"}}
	case 10:
		return HouseMeaning{"Career / Status", "Career, achievements, authority, reputation.", []string{"Career", "Fame", "Responsibility"}}
	case 11:
		return HouseMeaning{"Gains / Network", "Gains, friendships, community, ambitions.", []string{"Income", "Friends", "Goals"}}
	case 12:
		return HouseMeaning{"Loss / Moksha", "Expenses, isolation, foreign lands, sleep, liberation.", []string{"Expenses", "Foreign", "Spirituality"}}
	default:
		return HouseMeaning{"House", "Themes of life.", []string{}}
	}
}

// BodyMeaning describes a body's glyph and themes.
type BodyMeaning struct {
	Symbol string   `json:"symbol"`
	Short  string   `json:"short"`
	Themes []string `json:"themes"`
}

type bodyEntry struct {
	needles []string
	meaning BodyMeaning
}

// bodyTable is matched in order; the first entry with a needle contained
// in the normalized name wins.
var bodyTable = []bodyEntry{
	{[]string{"sun"}, BodyMeaning{"☉", "Ego, vitality, leadership.", []string{"Authority", "Confidence", "Purpose"}}},
	{[]string{"moon"}, BodyMeaning{"☾", "Mind, emotions, comfort.", []string{"Emotions", "Mother", "Stability"}}},
	{[]string{"mars"}, BodyMeaning{"♂", "Energy, action, courage.", []string{"Drive", "Courage", "Competition"}}},
	{[]string{"mercury"}, BodyMeaning{"☿", "Intellect, speech, trade.", []string{"Communication", "Logic", "Business"}}},
	{[]string{"venus"}, BodyMeaning{"♀", "Love, beauty, pleasure.", []string{"Relationships", "Art", "Luxury"}}},
	{[]string{"jupiter"}, BodyMeaning{"♃", "Wisdom, expansion, luck.", []string{"Growth", "Knowledge", "Blessings"}}},
	{[]string{"saturn"}, BodyMeaning{"♄", "Discipline, karma, patience.", []string{"Hard work", "Delay", "Structure"}}},
	{[]string{"rahu", "north"}, BodyMeaning{"☊", "Desire, ambition, obsession.", []string{"Material growth", "Fame", "Unconventional"}}},
	{[]string{"ketu", "south"}, BodyMeaning{"☋", "Detachment, spirituality, past karma.", []string{"Letting go", "Mysticism", "Liberation"}}},
	{[]string{"uranus"}, BodyMeaning{"♅", "Sudden change, innovation.", []string{"Breakthrough", "Freedom", "Shock"}}},
	{[]string{"neptune"}, BodyMeaning{"♆", "Dreams, intuition, illusion.", []string{"Imagination", "Spirituality", "Confusion"}}},
	{[]string{"pluto"}, BodyMeaning{"♇", "Power, deep transformation.", []string{"Rebirth", "Intensity", "Control"}}},
}

const defaultSymbol = "✦"

func lookupBody(name string) (BodyMeaning, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range bodyTable {
		for _, needle := range entry.needles {
			if strings.Contains(n, needle) {
				return entry.meaning, true
			}
		}
	}
	return BodyMeaning{}, false
}

// BodySymbol returns the glyph for a body name, matched loosely
// ("North Node" is Rahu). Unknown names get ✦.
func BodySymbol(name string) string {
	if m, ok := lookupBody(name); ok {
		return m.Symbol
	}
	return defaultSymbol
}

// BodyMeaningFor returns the meaning for a body name, matched like
// BodySymbol.
func BodyMeaningFor(name string) BodyMeaning {
	if m, ok := lookupBody(name); ok {
		return m
	}
	return BodyMeaning{Symbol: defaultSymbol, Short: "General influence.", Themes: []string{"Influence"}}
}
