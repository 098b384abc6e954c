package services

import (
	"regexp"
	"strconv"

	"careerlens/resume-analyzer/internal/models"
)

// Best-effort pattern extraction over free-form model output. Absence of
// a match is a normal outcome, never an error, and absence is reported
// explicitly rather than collapsed to zero.

var (
	scoreRe = regexp.MustCompile(`(\d+)\s*/\s*100`)
	trendRe = regexp.MustCompile(`\|\s*(\d{4})\s*\|\s*(-?\d+(?:\.\d+)?)\s*\|`)
)

// ParseScore returns the integer preceding the first "N/100" occurrence
// in text. Matches above 100 are skipped.
func ParseScore(text string) (int, bool) {
	for _, match := range scoreRe.FindAllStringSubmatch(text, -1) {
		score, err := strconv.Atoi(match[1])
		if err != nil || score > 100 {
			continue
		}
		return score, true
	}
	return 0, false
}

// ParseTrendSeries collects every Markdown-table row of the shape
// "| <4-digit-year> | <decimal> |" in order of appearance. Malformed
// rows are skipped; an empty series is a valid result.
func ParseTrendSeries(text string) []models.TrendPoint {
	var series []models.TrendPoint
	for _, match := range trendRe.FindAllStringSubmatch(text, -1) {
		year, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}
		series = append(series, models.TrendPoint{Year: year, Value: value})
	}
	return series
}
