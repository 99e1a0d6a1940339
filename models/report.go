package models

import "fmt"

// FeedbackTier is one of three fixed qualitative bands over the overall accuracy ratio
type FeedbackTier string

const (
	TierExcellent     FeedbackTier = "excellent"
	TierGood          FeedbackTier = "good, room to improve"
	TierNeedsPractice FeedbackTier = "needs significant practice"
)

// Message returns the user-facing feedback sentence for the tier.
func (t FeedbackTier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent performance! Keep it up!"
	case TierGood:
		return "You're doing well, but there is still room to improve!"
	default:
		return "There is still a lot to learn, don't give up!"
	}
}

// PerformanceReport is a derived projection of a user's progress.
// AverageTime is nil when no attempt was ever submitted.
type PerformanceReport struct {
	AccuracyPercent    int             `json:"accuracy_percent"`
	TotalQuestions     int             `json:"total_questions"`
	TotalCorrect       int             `json:"total_correct"`
	TotalIncorrect     int             `json:"total_incorrect"`
	AverageTime        *float64        `json:"average_time"`
	AverageTimeDisplay string          `json:"average_time_display"`
	Feedback           FeedbackTier    `json:"feedback"`
	FeedbackMessage    string          `json:"feedback_message"`
	Subjects           []SubjectReport `json:"subjects"`
}

// SubjectReport is one entry of the per-subject breakdown
type SubjectReport struct {
	Subject         string  `json:"subject"`
	Correct         int     `json:"correct"`
	Incorrect       int     `json:"incorrect"`
	AccuracyPercent float64 `json:"accuracy_percent"`
	CumulativeTime  float64 `json:"cumulative_time"`
}

// FormatAverageTime renders an average elapsed time, or "N/A" when there is none.
func FormatAverageTime(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *avg)
}
