package sentiment

import (
	"math"
	"strings"
	"time"
	"unicode"

	"interview-feedback/internal/lexicon"
)

// Result is a full sentiment reading for one utterance.
type Result struct {
	Score      float64 `json:"score"`      // -1.0 (negative) to 1.0 (positive)
	Magnitude  float64 `json:"magnitude"`  // 0.0 to 2.0 (intensity)
	Emotion    string  `json:"emotion"`    // mapped emotion label
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
}

// Score is the compact form attached to question/answer pairs.
type Score struct {
	Score      float64 `json:"score"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Sample is one timestamped sentiment reading gathered during a live call,
// tied to the candidate utterance it was computed from.
type Sample struct {
	Timestamp  time.Time `json:"timestamp"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Score      float64   `json:"score"`
	Magnitude  float64   `json:"magnitude"`
	Transcript string    `json:"transcript"`
}

// Scorer computes lexicon-based sentiment. It is a pure function of its
// tables: same text in, same result out.
type Scorer struct {
	polarity         map[string]int
	anxiousMarkers   []string
	confusedMarkers  []string
	confidentMarkers []string
}

func NewScorer(tables lexicon.Tables) *Scorer {
	return &Scorer{
		polarity:         tables.Polarity,
		anxiousMarkers:   tables.AnxiousMarkers,
		confusedMarkers:  tables.ConfusedMarkers,
		confidentMarkers: tables.ConfidentMarkers,
	}
}

// Analyze scores the text and then enriches the emotion label with
// keyword-based detection.
func (s *Scorer) Analyze(text string) Result {
	return s.enrich(text, s.analyzeBase(text))
}

// analyzeBase computes the bag-of-words polarity score. The comparative
// score is the summed word weights normalized by token count, clamped to
// [-1, 1]. Empty text scores 0 and maps to neutral.
func (s *Scorer) analyzeBase(text string) Result {
	tokens := tokenize(text)

	sum := 0
	matched := 0
	for _, tok := range tokens {
		w, ok := s.polarity[tok]
		if !ok {
			continue
		}
		sum += w
		matched++
	}

	score := 0.0
	if len(tokens) > 0 {
		score = float64(sum) / float64(len(tokens))
	}
	score = clamp(score, -1, 1)

	// Rough intensity proxy, scaled to match Google NLP's 0-2 range.
	magnitude := math.Min(2, math.Abs(score)*2)

	emotion := "neutral"
	switch {
	case score >= 0.5:
		emotion = "happy"
	case score >= 0.25:
		emotion = "confident"
	case score > -0.25:
		emotion = "neutral"
	case score > -0.5:
		emotion = "uncertain"
	default:
		emotion = "sad"
	}

	// Higher absolute scores and more matched words mean higher confidence.
	confidence := 0.5 + math.Min(0.5, math.Abs(score)*0.5)
	confidence += math.Min(0.2, float64(matched)*0.05)

	return Result{
		Score:      score,
		Magnitude:  magnitude,
		Emotion:    emotion,
		Confidence: math.Min(1.0, confidence),
	}
}

// enrich overrides the emotion label when the text contains explicit
// emotional markers. Checks run in a fixed order and the first matching
// group wins.
func (s *Scorer) enrich(text string, base Result) Result {
	lower := strings.ToLower(text)

	if containsAny(lower, s.anxiousMarkers) {
		base.Emotion = "anxious"
		return base
	}

	if containsAny(lower, s.confusedMarkers) {
		base.Emotion = "confused"
		return base
	}

	if containsAny(lower, s.confidentMarkers) {
		base.Emotion = "confident"
		base.Confidence = math.Min(1.0, base.Confidence+0.1)
		return base
	}

	return base
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// tokenize lowercases the text and splits it into words, keeping
// apostrophes so contractions stay intact.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
