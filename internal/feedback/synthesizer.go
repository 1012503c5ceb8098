package feedback

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"interview-feedback/internal/lexicon"
	"interview-feedback/internal/speech"
)

// maxFeedbackItems caps the synthesized list so reports stay digestible.
const maxFeedbackItems = 3

// Synthesizer turns a speech analysis into a short list of coaching
// sentences. Template selection is randomized for variety; inject a seeded
// rand.Rand to make the output reproducible.
type Synthesizer struct {
	hedgingPatterns []string
	passivePatterns []string
	rng             *rand.Rand
}

func NewSynthesizer(tables lexicon.Tables, rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{
		hedgingPatterns: tables.HedgingPatterns,
		passivePatterns: tables.PassivePatterns,
		rng:             rng,
	}
}

// Synthesize builds detailed feedback from the analysis of one utterance.
// Every category picks one random paraphrase; when more than three items
// fire, a random three survive.
func (s *Synthesizer) Synthesize(analysis speech.Result) []string {
	var feedback []string

	if templates, ok := paceTemplates[analysis.Pace.Status]; ok {
		wpm := strconv.Itoa(int(math.Round(analysis.Pace.WordsPerMinute)))
		feedback = append(feedback, strings.ReplaceAll(s.pick(templates), "{wpm}", wpm))
	}

	feedback = append(feedback, s.fillerFeedback(analysis.FillerWords))

	if templates, ok := emotionTemplates[analysis.Sentiment]; ok {
		feedback = append(feedback, s.pick(templates))
	}

	wordCount := len(strings.Fields(analysis.Transcript))
	if wordCount > 40 && analysis.Pauses < 3 {
		feedback = append(feedback, s.pick(pauseTemplates["too_few"]))
	} else if analysis.Pauses >= 3 && s.rng.Float64() > 0.5 {
		// Positive pause praise only fires half the time so reports
		// don't all read the same.
		feedback = append(feedback, s.pick(pauseTemplates["good"]))
	}

	lower := strings.ToLower(analysis.Transcript)
	if containsAny(lower, s.hedgingPatterns) {
		feedback = append(feedback, s.pick(linguisticPatternTemplates["hedging"]))
	}
	if containsAny(lower, s.passivePatterns) {
		feedback = append(feedback, s.pick(linguisticPatternTemplates["passive_voice"]))
	}

	if len(feedback) > maxFeedbackItems {
		s.shuffle(feedback)
		feedback = feedback[:maxFeedbackItems]
	}

	return feedback
}

func (s *Synthesizer) fillerFeedback(fillers speech.FillerWords) string {
	var bucket string
	switch {
	case fillers.Count == 0:
		bucket = "none"
	case fillers.Count <= 2:
		bucket = "low"
	case fillers.Count <= 5:
		bucket = "medium"
	default:
		bucket = "high"
	}

	text := s.pick(fillerWordTemplates[bucket])
	if bucket == "none" {
		return text
	}

	examples := fillers.Instances
	if len(examples) > 3 {
		examples = examples[:3]
	}

	text = strings.ReplaceAll(text, "{count}", strconv.Itoa(fillers.Count))
	return strings.ReplaceAll(text, "{examples}", strings.Join(examples, `", "`))
}

func (s *Synthesizer) pick(templates []string) string {
	return templates[s.rng.Intn(len(templates))]
}

// Fisher-Yates.
func (s *Synthesizer) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
