package kundli

import "context"

// Service generates charts from full birth input.
type Service interface {
	GenerateChart(ctx context.Context, input BirthInput) (Chart, error)
}

// OfflineService generates charts locally with Generate.
type OfflineService struct{}

// NewOfflineService creates an offline chart service.
func NewOfflineService() *OfflineService {
	return &OfflineService{}
}

// GenerateChart builds the offline chart for input. Timezone and
// coordinates are ignored.
func (s *OfflineService) GenerateChart(ctx context.Context, input BirthInput) (Chart, error) {
	if err := ctx.Err(); err != nil {
		return Chart{}, err
	}
	return Generate(input.Details())
}

// PreviewService returns one fixed chart for every input. It backs layout
// previews and tests that need a chart without caring which.
type PreviewService struct{}

// GenerateChart returns the preview chart.
func (PreviewService) GenerateChart(ctx context.Context, _ BirthInput) (Chart, error) {
	if err := ctx.Err(); err != nil {
		return Chart{}, err
	}
	return PreviewChart(), nil
}

// PreviewChart is a hand-written sample chart with a Scorpio lagna.
func PreviewChart() Chart {
	signs := []string{
		"Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces", "Aries",
		"Taurus", "Gemini", "Cancer", "Leo", "Virgo", "Libra",
	}
	placed := map[int][]string{1: {"Mars"}, 9: {"Moon"}, 12: {"Sun"}}

	houses := make([]HouseInfo, 0, HouseCount)
	for h := 1; h <= HouseCount; h++ {
		bodies := placed[h]
		if bodies == nil {
			bodies = []string{}
		}
		houses = append(houses, HouseInfo{House: h, Sign: signs[h-1], Bodies: bodies})
	}

	return Chart{
		Lagna:     "Scorpio",
		MoonSign:  "Cancer",
		Nakshatra: "Pushya",
		Houses:    houses,
		Bodies: []BodyInfo{
			{Body: "Sun", Sign: "Libra", House: 12},
			{Body: "Moon", Sign: "Cancer", House: 9},
			{Body: "Mars", Sign: "Scorpio", House: 1},
			{Body: "Mercury", Sign: "Libra", House: 12},
			{Body: "Jupiter", Sign: "Cancer", House: 9},
			{Body: "Venus", Sign: "Virgo", House: 11},
			{Body: "Saturn", Sign: "Capricorn", House: 3},
			{Body: "Rahu", Sign: "Pisces", House: 5},
			{Body: "Ketu", Sign: "Virgo", House: 11},
		},
	}
}
