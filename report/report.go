// Package report projects accumulated progress into a performance report.
package report

import (
	"math"
	"sort"

	"github.com/adamspd/LogicQuiz/models"
)

const (
	excellentAbove = 0.8
	goodAbove      = 0.5
)

// Build derives the performance report for a progress map. It never mutates
// its input, and equal inputs always produce equal reports.
func Build(progress models.ProgressMap, totalQuestions int) models.PerformanceReport {
	subjects := make([]string, 0, len(progress))
	for s := range progress {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	var (
		correct, incorrect int
		timeSum            float64
		samples            int
		breakdown          = make([]models.SubjectReport, 0, len(subjects))
	)
	for _, s := range subjects {
		stats := progress[s]
		correct += stats.Correct
		incorrect += stats.Incorrect
		for _, t := range stats.TimeSamples {
			timeSum += t
		}
		samples += len(stats.TimeSamples)

		breakdown = append(breakdown, models.SubjectReport{
			Subject:         s,
			Correct:         stats.Correct,
			Incorrect:       stats.Incorrect,
			AccuracyPercent: percent(stats.Correct, stats.Incorrect),
			CumulativeTime:  stats.CumulativeTime,
		})
	}

	ratio := Ratio(correct, incorrect)
	tier := Tier(ratio)

	var avg *float64
	if samples > 0 {
		v := timeSum / float64(samples)
		avg = &v
	}

	return models.PerformanceReport{
		AccuracyPercent:    int(math.RoundToEven(ratio * 100)),
		TotalQuestions:     totalQuestions,
		TotalCorrect:       correct,
		TotalIncorrect:     incorrect,
		AverageTime:        avg,
		AverageTimeDisplay: models.FormatAverageTime(avg),
		Feedback:           tier,
		FeedbackMessage:    tier.Message(),
		Subjects:           breakdown,
	}
}

// Ratio is correct/(correct+incorrect), or 0 when nothing was answered.
func Ratio(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Tier maps an accuracy ratio onto a feedback band. Both bounds are strict:
// exactly 0.8 is "good" and exactly 0.5 needs practice.
func Tier(ratio float64) models.FeedbackTier {
	switch {
	case ratio > excellentAbove:
		return models.TierExcellent
	case ratio > goodAbove:
		return models.TierGood
	default:
		return models.TierNeedsPractice
	}
}

func percent(correct, incorrect int) float64 {
	return Ratio(correct, incorrect) * 100
}
