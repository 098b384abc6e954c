package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careerlens/resume-analyzer/internal/models"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantScore int
		wantFound bool
	}{
		{"labeled score", "Resume Score: 82/100\n\n- Good structure", 82, true},
		{"score with spaces around slash", "Score: 82 / 100", 82, true},
		{"bare fraction", "your resume rates 7/100 overall", 7, true},
		{"first match wins", "7/100 and 91/100", 7, true},
		{"no score", "no score here", 0, false},
		{"empty text", "", 0, false},
		{"zero is a valid score", "ATS Score: 0/100", 0, true},
		{"full marks", "Opportunity Score: 100/100", 100, true},
		{"over 100 skipped in favor of later match", "9999/100 then 45/100", 45, true},
		{"only over 100 means absent", "a ratio of 250/100", 0, false},
		{"fraction with other denominator ignored", "scored 4/5 on clarity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, found := ParseScore(tt.input)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestParseTrendSeries(t *testing.T) {
	text := `Demand for this role has grown steadily.

| Year | Demand (%) |
|------|------------|
| 2023 | 12.5 |
| abcd | xx |
| 2024 | 18.0 |

The projection assumes current hiring patterns hold.`

	series := ParseTrendSeries(text)

	assert.Equal(t, []models.TrendPoint{
		{Year: 2023, Value: 12.5},
		{Year: 2024, Value: 18.0},
	}, series)
}

func TestParseTrendSeries_NoRows(t *testing.T) {
	series := ParseTrendSeries("There is no table in this response, only prose.")
	assert.Empty(t, series)
}

func TestParseTrendSeries_OrderOfAppearance(t *testing.T) {
	text := "| 2026 | 21.0 |\nsome prose\n| 2019 | -3.5 |\n| 2022 | 9 |"

	series := ParseTrendSeries(text)

	assert.Equal(t, []models.TrendPoint{
		{Year: 2026, Value: 21.0},
		{Year: 2019, Value: -3.5},
		{Year: 2022, Value: 9},
	}, series)
}

func TestParseTrendSeries_WhitespaceTolerant(t *testing.T) {
	series := ParseTrendSeries("|2023|12.5| and |  2024  |  18.0  |")

	assert.Equal(t, []models.TrendPoint{
		{Year: 2023, Value: 12.5},
		{Year: 2024, Value: 18.0},
	}, series)
}
