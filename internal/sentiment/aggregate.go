package sentiment

import "time"

// Aggregation helpers for the feedback report: emotion distribution,
// average score per emotion, and the emotion timeline.

// TimelinePoint is one step in the interview's emotional arc.
type TimelinePoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Emotion    string    `json:"emotion"`
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
}

// EmotionDistribution counts how often each emotion label occurred.
func EmotionDistribution(samples []Sample) map[string]int {
	counts := make(map[string]int, len(samples))
	for _, s := range samples {
		counts[s.Emotion]++
	}
	return counts
}

// AverageScoreByEmotion returns the mean sentiment score per emotion label.
func AverageScoreByEmotion(samples []Sample) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range samples {
		totals[s.Emotion] += s.Score
		counts[s.Emotion]++
	}

	averages := make(map[string]float64, len(totals))
	for emotion, total := range totals {
		averages[emotion] = total / float64(counts[emotion])
	}
	return averages
}

// Timeline projects the samples onto chart-ready points, preserving order.
func Timeline(samples []Sample) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(samples))
	for _, s := range samples {
		points = append(points, TimelinePoint{
			Timestamp:  s.Timestamp,
			Emotion:    s.Emotion,
			Score:      s.Score,
			Confidence: s.Confidence,
		})
	}
	return points
}
