package transcript

import (
	"strings"

	"interview-feedback/internal/sentiment"
)

// AttachSentiment correlates live sentiment samples with extracted answers.
// A sample matches an answer when either text contains the other; the first
// matching sample wins (linear scan in sample order, not nearest-in-time).
// Answers without a match keep a nil score. The input slice is not modified.
func AttachSentiment(pairs []QuestionAnswerPair, samples []sentiment.Sample) []QuestionAnswerPair {
	if len(samples) == 0 {
		return pairs
	}

	attached := make([]QuestionAnswerPair, len(pairs))
	copy(attached, pairs)

	for i := range attached {
		answer := attached[i].Answer
		if answer == "" {
			continue
		}

		for _, sample := range samples {
			if sample.Transcript == "" {
				continue
			}
			if strings.Contains(sample.Transcript, answer) || strings.Contains(answer, sample.Transcript) {
				attached[i].Sentiment = &sentiment.Score{
					Score:      sample.Score,
					Emotion:    sample.Emotion,
					Confidence: sample.Confidence,
				}
				break
			}
		}
	}

	return attached
}
