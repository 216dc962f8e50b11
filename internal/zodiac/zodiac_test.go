package zodiac

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
)

func TestSignForBoundaries(t *testing.T) {
	tcs := []struct {
		month int
		day   int
		want  Sign
	}{
		{month: 1, day: 19, want: Capricorn},
		{month: 1, day: 20, want: Aquarius},
		{month: 2, day: 18, want: Aquarius},
		{month: 2, day: 19, want: Pisces},
		{month: 3, day: 20, want: Pisces},
		{month: 3, day: 21, want: Aries},
		{month: 4, day: 19, want: Aries},
		{month: 4, day: 20, want: Taurus},
		{month: 5, day: 20, want: Taurus},
		{month: 5, day: 21, want: Gemini},
		{month: 6, day: 20, want: Gemini},
		{month: 6, day: 21, want: Cancer},
		{month: 7, day: 22, want: Cancer},
		{month: 7, day: 23, want: Leo},
		{month: 8, day: 22, want: Leo},
		{month: 8, day: 23, want: Virgo},
		{month: 9, day: 22, want: Virgo},
		{month: 9, day: 23, want: Libra},
		{month: 10, day: 22, want: Libra},
		{month: 10, day: 23, want: Scorpio},
		{month: 11, day: 21, want: Scorpio},
		{month: 11, day: 22, want: Sagittarius},
		{month: 12, day: 21, want: Sagittarius},
		{month: 12, day: 22, want: Capricorn},
	}

	for _, tc := range tcs {
		if got := SignFor(tc.month, tc.day); got != tc.want {
			t.Fatalf("SignFor(%d, %d) = %s, want %s", tc.month, tc.day, got, tc.want)
		}
	}
}

func TestSignForLibraScenario(t *testing.T) {
	got := SignFor(10, 25)
	if got != Scorpio {
		t.Fatalf("SignFor(10, 25) = %s, want Scorpio", got)
	}
	got = SignFor(10, 15)
	if got != Libra || got.Element() != Air {
		t.Fatalf("SignFor(10, 15) = %s (%s), want Libra (AIR)", got, got.Element())
	}
}

func TestSignForIsTotal(t *testing.T) {
	for month := -1; month <= 14; month++ {
		for day := -1; day <= 33; day++ {
			if got := SignFor(month, day); !got.Valid() {
				t.Fatalf("SignFor(%d, %d) = %v, want a valid sign", month, day, got)
			}
		}
	}
	if got := SignFor(13, 1); got != Aries {
		t.Fatalf("SignFor(13, 1) = %s, want Aries", got)
	}
	if got := SignFor(3, 32); got != Aries {
		t.Fatalf("SignFor(3, 32) = %s, want Aries", got)
	}
}

func TestSignAttributes(t *testing.T) {
	tcs := []struct {
		sign     Sign
		name     string
		element  Element
		modality Modality
		ruler    Body
	}{
		{sign: Aries, name: "ARIES", element: Fire, modality: Cardinal, ruler: Mars},
		{sign: Taurus, name: "TAURUS", element: Earth, modality: Fixed, ruler: Venus},
		{sign: Gemini, name: "GEMINI", element: Air, modality: Mutable, ruler: Mercury},
		{sign: Cancer, name: "CANCER", element: Water, modality: Cardinal, ruler: Moon},
		{sign: Leo, name: "LEO", element: Fire, modality: Fixed, ruler: Sun},
		{sign: Virgo, name: "VIRGO", element: Earth, modality: Mutable, ruler: Mercury},
		{sign: Libra, name: "LIBRA", element: Air, modality: Cardinal, ruler: Venus},
		{sign: Scorpio, name: "SCORPIO", element: Water, modality: Fixed, ruler: Pluto},
		{sign: Sagittarius, name: "SAGITTARIUS", element: Fire, modality: Mutable, ruler: Jupiter},
		{sign: Capricorn, name: "CAPRICORN", element: Earth, modality: Cardinal, ruler: Saturn},
		{sign: Aquarius, name: "AQUARIUS", element: Air, modality: Fixed, ruler: Uranus},
		{sign: Pisces, name: "PISCES", element: Water, modality: Mutable, ruler: Neptune},
	}

	for _, tc := range tcs {
		if tc.sign.Name() != tc.name {
			t.Fatalf("%v.Name() = %q, want %q", tc.sign, tc.sign.Name(), tc.name)
		}
		if tc.sign.Element() != tc.element {
			t.Fatalf("%v.Element() = %s, want %s", tc.sign, tc.sign.Element(), tc.element)
		}
		if tc.sign.Modality() != tc.modality {
			t.Fatalf("%v.Modality() = %s, want %s", tc.sign, tc.sign.Modality(), tc.modality)
		}
		if tc.sign.RulingBody() != tc.ruler {
			t.Fatalf("%v.RulingBody() = %s, want %s", tc.sign, tc.sign.RulingBody(), tc.ruler)
		}
	}
}

func TestEverySignHasTableEntries(t *testing.T) {
	signs := Signs()
	if len(signs) != 12 {
		t.Fatalf("len(Signs()) = %d, want 12", len(signs))
	}
	for _, s := range signs {
		if s.Element() == ElementUnspecified || s.Modality() == ModalityUnspecified || s.RulingBody() == BodyUnspecified {
			t.Fatalf("sign %v has incomplete attributes", s)
		}
		if Opposite(s) == SignUnspecified {
			t.Fatalf("sign %v has no opposite", s)
		}
		if Opposite(Opposite(s)) != s {
			t.Fatalf("Opposite is not an involution for %v", s)
		}
	}
}

func TestOppositeIsSixSignsAway(t *testing.T) {
	for _, s := range Signs() {
		want := Sign((int(s)-1+6)%12 + 1)
		if got := Opposite(s); got != want {
			t.Fatalf("Opposite(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestCycle(t *testing.T) {
	cycle := Cycle()
	if len(cycle) != 12 || cycle[0] != "Aries" || cycle[11] != "Pisces" {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
}

func TestParseSign(t *testing.T) {
	for _, input := range []string{"Libra", "libra", " LIBRA "} {
		got, err := ParseSign(input)
		if err != nil {
			t.Fatalf("ParseSign(%q) error: %v", input, err)
		}
		if got != Libra {
			t.Fatalf("ParseSign(%q) = %v, want Libra", input, got)
		}
	}

	_, err := ParseSign("Ophiuchus")
	if !errors.Is(err, apperrors.New(apperrors.CodeInvalidSign, "")) {
		t.Fatalf("ParseSign error = %v, want INVALID_SIGN", err)
	}
}

func TestSignTextRoundTrip(t *testing.T) {
	text, err := Capricorn.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var parsed Sign
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if parsed != Capricorn {
		t.Fatalf("round trip = %v, want Capricorn", parsed)
	}
	if err := parsed.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("expected UnmarshalText error")
	}
}

func TestUnspecifiedValues(t *testing.T) {
	if SignUnspecified.Valid() || Sign(99).Valid() {
		t.Fatal("expected unspecified and out-of-range signs to be invalid")
	}
	if Sign(99).DisplayName() != "Unspecified" {
		t.Fatalf("Sign(99).DisplayName() = %q", Sign(99).DisplayName())
	}
	if ElementUnspecified.String() != "UNSPECIFIED" || ModalityUnspecified.String() != "UNSPECIFIED" {
		t.Fatal("unexpected unspecified strings")
	}
	if !Fire.Active() || !Air.Active() || !Earth.Receptive() || !Water.Receptive() || Fire.Receptive() {
		t.Fatal("unexpected element polarity")
	}
}
