package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-feedback/internal/lexicon"
)

// boundaryTables gives every token a known weight so scores land exactly
// on the emotion thresholds. Marker lists stay empty so enrichment never
// overrides the label under test.
func boundaryTables() lexicon.Tables {
	return lexicon.Tables{
		Polarity: map[string]int{"up": 1, "down": -1},
	}
}

func TestAnalyze_EmotionBoundaries(t *testing.T) {
	scorer := NewScorer(boundaryTables())

	tests := []struct {
		name    string
		text    string
		score   float64
		emotion string
	}{
		{"exactly 0.5 is happy", "up pad", 0.5, "happy"},
		{"exactly 0.25 is confident", "up pad pad pad", 0.25, "confident"},
		{"just above -0.25 is neutral", "down pad pad pad pad", -0.2, "neutral"},
		{"exactly -0.25 falls to uncertain", "down pad pad pad", -0.25, "uncertain"},
		{"exactly -0.5 falls to sad", "down pad", -0.5, "sad"},
		{"zero is neutral", "pad pad", 0, "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Analyze(tt.text)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
			assert.Equal(t, tt.emotion, result.Emotion)
		})
	}
}

func TestAnalyze_ScoreClamping(t *testing.T) {
	scorer := NewScorer(lexicon.Tables{Polarity: map[string]int{"superb": 5, "awful": -5}})

	result := scorer.Analyze("superb superb")
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 2.0, result.Magnitude)

	result = scorer.Analyze("awful awful")
	assert.Equal(t, -1.0, result.Score)
	assert.Equal(t, 2.0, result.Magnitude)
}

func TestAnalyze_RangeInvariants(t *testing.T) {
	scorer := NewScorer(lexicon.Default())

	texts := []string{
		"",
		"I am absolutely thrilled about this fantastic opportunity",
		"I failed miserably and everything went wrong, a terrible horrible mess",
		"The quick brown fox jumps over the lazy dog",
		"um uh you know I guess maybe",
		"!!! ??? ...",
	}

	for _, text := range texts {
		result := scorer.Analyze(text)
		assert.GreaterOrEqual(t, result.Score, -1.0, "score lower bound for %q", text)
		assert.LessOrEqual(t, result.Score, 1.0, "score upper bound for %q", text)
		assert.GreaterOrEqual(t, result.Magnitude, 0.0, "magnitude lower bound for %q", text)
		assert.LessOrEqual(t, result.Magnitude, 2.0, "magnitude upper bound for %q", text)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "confidence lower bound for %q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "confidence upper bound for %q", text)
	}
}

func TestAnalyze_EmptyTextIsNeutral(t *testing.T) {
	scorer := NewScorer(lexicon.Default())

	result := scorer.Analyze("")
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, "neutral", result.Emotion)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestAnalyze_Idempotent(t *testing.T) {
	scorer := NewScorer(lexicon.Default())

	text := "I'm confident we delivered a great result despite the pressure"
	first := scorer.Analyze(text)
	second := scorer.Analyze(text)
	assert.Equal(t, first, second)
}

func TestEnrich_MarkerPriority(t *testing.T) {
	scorer := NewScorer(lexicon.Default())

	// Anxious markers win over confident markers regardless of position.
	result := scorer.Analyze("I am definitely nervous about this")
	assert.Equal(t, "anxious", result.Emotion)

	// Confused markers beat confident markers.
	result = scorer.Analyze("I'm not sure, but I know the basics")
	assert.Equal(t, "confused", result.Emotion)
}

func TestEnrich_ConfidentBoostsConfidence(t *testing.T) {
	scorer := NewScorer(lexicon.Default())

	plain := scorer.Analyze("the weather is unremarkable today")
	boosted := scorer.Analyze("the weather is definitely unremarkable today")

	require.Equal(t, "confident", boosted.Emotion)
	assert.InDelta(t, plain.Confidence+0.1, boosted.Confidence, 1e-9)
}

func TestAggregates(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	samples := []Sample{
		{Timestamp: base, Emotion: "happy", Score: 0.8, Confidence: 0.9},
		{Timestamp: base.Add(time.Minute), Emotion: "happy", Score: 0.6, Confidence: 0.8},
		{Timestamp: base.Add(2 * time.Minute), Emotion: "anxious", Score: -0.4, Confidence: 0.7},
	}

	dist := EmotionDistribution(samples)
	assert.Equal(t, map[string]int{"happy": 2, "anxious": 1}, dist)

	avg := AverageScoreByEmotion(samples)
	assert.InDelta(t, 0.7, avg["happy"], 1e-9)
	assert.InDelta(t, -0.4, avg["anxious"], 1e-9)

	timeline := Timeline(samples)
	require.Len(t, timeline, 3)
	assert.Equal(t, "happy", timeline[0].Emotion)
	assert.Equal(t, base, timeline[0].Timestamp)
	assert.Equal(t, "anxious", timeline[2].Emotion)
}

func TestAggregates_Empty(t *testing.T) {
	assert.Empty(t, EmotionDistribution(nil))
	assert.Empty(t, AverageScoreByEmotion(nil))
	assert.Empty(t, Timeline(nil))
}
