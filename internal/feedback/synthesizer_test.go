package feedback

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-feedback/internal/lexicon"
	"interview-feedback/internal/speech"
)

func seededSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(lexicon.Default(), rand.New(rand.NewSource(seed)))
}

func TestSynthesize_Deterministic(t *testing.T) {
	analysis := speech.Result{
		FillerWords: speech.FillerWords{Count: 4, Instances: []string{"um", "uh", "like", "um"}},
		Pace:        speech.Pace{WordsPerMinute: 175, Status: speech.PaceTooFast},
		Pauses:      1,
		Sentiment:   "anxious",
		Transcript:  strings.Repeat("word ", 50),
	}

	first := seededSynthesizer(42).Synthesize(analysis)
	second := seededSynthesizer(42).Synthesize(analysis)
	assert.Equal(t, first, second)
}

func TestSynthesize_CapsAtThreeItems(t *testing.T) {
	// Every category fires: fast pace, heavy fillers, anxious emotion, too
	// few pauses, hedging and passive voice.
	analysis := speech.Result{
		FillerWords: speech.FillerWords{Count: 7, Instances: []string{"um", "uh", "like", "um", "uh", "so", "um"}},
		Pace:        speech.Pace{WordsPerMinute: 180, Status: speech.PaceTooFast},
		Pauses:      0,
		Sentiment:   "anxious",
		Transcript:  "I guess the work was done by the team " + strings.Repeat("word ", 45),
	}

	for seed := int64(0); seed < 20; seed++ {
		feedback := seededSynthesizer(seed).Synthesize(analysis)
		assert.Len(t, feedback, maxFeedbackItems, "seed %d", seed)
	}
}

func TestSynthesize_TemplateMembership(t *testing.T) {
	analysis := speech.Result{
		FillerWords: speech.FillerWords{Count: 0},
		Pace:        speech.Pace{Status: speech.PaceUnknown},
		Pauses:      0,
		Sentiment:   "neutral",
		Transcript:  "a short clean answer",
	}

	feedback := seededSynthesizer(7).Synthesize(analysis)
	require.Len(t, feedback, 2)
	assert.Contains(t, fillerWordTemplates["none"], feedback[0])
	assert.Contains(t, emotionTemplates["neutral"], feedback[1])
}

func TestSynthesize_UnknownPaceSkipsPaceFeedback(t *testing.T) {
	analysis := speech.Result{
		Pace:       speech.Pace{Status: speech.PaceUnknown},
		Sentiment:  "neutral",
		Transcript: "a short clean answer",
	}

	feedback := seededSynthesizer(3).Synthesize(analysis)
	for _, item := range feedback {
		assert.NotContains(t, item, "words per minute")
		assert.NotContains(t, item, "wpm")
	}
}

func TestSynthesize_FillerSubstitution(t *testing.T) {
	analysis := speech.Result{
		FillerWords: speech.FillerWords{
			Count:     6,
			Instances: []string{"um", "uh", "like", "so", "um", "uh"},
		},
		Pace:       speech.Pace{Status: speech.PaceUnknown},
		Sentiment:  "neutral",
		Transcript: "short",
	}

	for seed := int64(0); seed < 10; seed++ {
		feedback := seededSynthesizer(seed).Synthesize(analysis)
		joined := strings.Join(feedback, "\n")
		assert.NotContains(t, joined, "{count}", "seed %d", seed)
		assert.NotContains(t, joined, "{examples}", "seed %d", seed)
		assert.NotContains(t, joined, "{wpm}", "seed %d", seed)
		// Only the first three instances are quoted as examples.
		assert.NotContains(t, joined, `"so"`, "seed %d", seed)
	}
}

func TestSynthesize_PausePraiseIsOptional(t *testing.T) {
	analysis := speech.Result{
		FillerWords: speech.FillerWords{Count: 0},
		Pace:        speech.Pace{Status: speech.PaceUnknown},
		Pauses:      5,
		Sentiment:   "neutral",
		Transcript:  "short answer with pauses",
	}

	praised := 0
	for seed := int64(0); seed < 40; seed++ {
		feedback := seededSynthesizer(seed).Synthesize(analysis)
		for _, item := range feedback {
			if contains(pauseTemplates["good"], item) {
				praised++
				break
			}
		}
	}

	// Praise fires roughly half the time; with 40 seeds both outcomes
	// must show up.
	assert.Greater(t, praised, 0)
	assert.Less(t, praised, 40)
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
