package insight

import "github.com/louisbranch/astrokit/internal/zodiac"

// Block is a titled list of short bullets.
type Block struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// ZodiacTraits returns the trait card for sign. Signs outside the twelve
// get an empty block.
func ZodiacTraits(sign zodiac.Sign) Block {
	switch sign {
	case zodiac.Aries:
		return Block{"Aries traits", []string{"Bold, action-first energy", "Natural leader", "Watch-outs: impatience, impulsive decisions"}}
	case zodiac.Taurus:
		return Block{"Taurus traits", []string{"Grounded, consistent, loyal", "Strong taste and values", "Watch-outs: stubbornness, resisting change"}}
	case zodiac.Gemini:
		return Block{"Gemini traits", []string{"Curious, witty, adaptable", "Great communicator", "Watch-outs: overthinking, scattered focus"}}
	case zodiac.Cancer:
		return Block{"Cancer traits", []string{"Protective, intuitive, nurturing", "Deep emotional memory", "Watch-outs: mood swings, taking things personally"}}
	case zodiac.Leo:
		return Block{"Leo traits", []string{"Confident, warm, expressive", "Loves recognition and loyalty", "Watch-outs: pride, needing validation"}}
	case zodiac.Virgo:
		return Block{"Virgo traits", []string{"Detail-oriented, helpful, practical", "Strong sense of improvement", "Watch-outs: perfectionism, self-criticism"}}
	case zodiac.Libra:
		return Block{"Libra traits", []string{"Balanced, charming, fair-minded", "Great at partnerships", "Watch-outs: indecision, people-pleasing"}}
	case zodiac.Scorpio:
		return Block{"Scorpio traits", []string{"Intense, focused, resilient", "Loyal to the core", "Watch-outs: secrecy, holding grudges"}}
	case zodiac.Sagittarius:
		return Block{"Sagittarius traits", []string{"Adventurous, optimistic, honest", "Big-picture thinker", "Watch-outs: bluntness, restlessness"}}
	case zodiac.Capricorn:
		return Block{"Capricorn traits", []string{"Disciplined, ambitious, reliable", "Long-term builder", "Watch-outs: rigidity, work-life imbalance"}}
	case zodiac.Aquarius:
		return Block{"Aquarius traits", []string{"Innovative, independent, future-minded", "Values freedom and ideas", "Watch-outs: emotional distance, stubborn opinions"}}
	case zodiac.Pisces:
		return Block{"Pisces traits", []string{"Compassionate, imaginative, intuitive", "Deep empathy", "Watch-outs: escapism, absorbing others’ emotions"}}
	default:
		return Block{}
	}
}

// LifePath returns the card for a life-path number, masters included.
func LifePath(lifePath int) Block {
	switch lifePath {
	case 1:
		return Block{"Life Path 1", []string{"Leader energy", "Independence & initiative", "Watch-outs: ego, impatience"}}
	case 2:
		return Block{"Life Path 2", []string{"Peacemaker", "Partnership & diplomacy", "Watch-outs: sensitivity, over-giving"}}
	case 3:
		return Block{"Life Path 3", []string{"Creator", "Expression & joy", "Watch-outs: inconsistency, seeking approval"}}
	case 4:
		return Block{"Life Path 4", []string{"Builder", "Structure & discipline", "Watch-outs: rigidity, overwork"}}
	case 5:
		return Block{"Life Path 5", []string{"Explorer", "Freedom & change", "Watch-outs: impulsiveness, instability"}}
	case 6:
		return Block{"Life Path 6", []string{"Caretaker", "Responsibility & love", "Watch-outs: control, over-sacrifice"}}
	case 7:
		return Block{"Life Path 7", []string{"Seeker", "Wisdom & introspection", "Watch-outs: isolation, skepticism"}}
	case 8:
		return Block{"Life Path 8", []string{"Achiever", "Power & abundance", "Watch-outs: material fixation, stress"}}
	case 9:
		return Block{"Life Path 9", []string{"Humanitarian", "Compassion & completion", "Watch-outs: emotional burnout, letting go"}}
	case 11:
		return Block{"Master 11", []string{"Intuition amplifier", "Vision & inspiration", "Watch-outs: anxiety, nervous energy"}}
	case 22:
		return Block{"Master 22", []string{"Master builder", "Big vision made real", "Watch-outs: pressure, fear of failure"}}
	case 33:
		return Block{"Master 33", []string{"Teacher healer", "Service & upliftment", "Watch-outs: boundaries, emotional overload"}}
	default:
		return Block{"Life Path", []string{"Unique journey", "Focus on alignment and growth"}}
	}
}

// PersonalYear returns the card for a personal-year number. Master
// numbers fall through to the generic card.
func PersonalYear(personalYear int) Block {
	switch personalYear {
	case 1:
		return Block{"Personal Year 1", []string{"Fresh starts", "New goals and identity", "Act boldly, start small"}}
	case 2:
		return Block{"Personal Year 2", []string{"Partnerships", "Patience and planning", "Nurture relationships"}}
	case 3:
		return Block{"Personal Year 3", []string{"Creativity", "Visibility and joy", "Share your voice"}}
	case 4:
		return Block{"Personal Year 4", []string{"Foundation", "Work and systems", "Consistency wins"}}
	case 5:
		return Block{"Personal Year 5", []string{"Change", "Travel / upgrades", "Stay flexible"}}
	case 6:
		return Block{"Personal Year 6", []string{"Home & love", "Family responsibilities", "Balance giving"}}
	case 7:
		return Block{"Personal Year 7", []string{"Inner work", "Learning and reflection", "Protect your peace"}}
	case 8:
		return Block{"Personal Year 8", []string{"Money & career", "Leadership and results", "Be strategic"}}
	case 9:
		return Block{"Personal Year 9", []string{"Completion", "Letting go", "Close chapters gracefully"}}
	default:
		return Block{"Personal Year", []string{"Focus on mindful progress"}}
	}
}
