package speech

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"interview-feedback/internal/lexicon"
)

// Pace classification boundaries (words per minute). 130 and 160 are both
// inside the ideal band.
const (
	idealPaceMin = 130
	idealPaceMax = 160
)

const (
	PaceTooSlow = "too_slow"
	PaceGood    = "good"
	PaceTooFast = "too_fast"
	// PaceUnknown marks degenerate input (no words or no elapsed time)
	// where a rate cannot be computed.
	PaceUnknown = "unknown"
)

const (
	ClarityGood    = "good"
	ClarityVerbose = "verbose"
	ClarityChoppy  = "choppy"
)

// FillerWords lists every matched filler instance from a live utterance.
type FillerWords struct {
	Count     int      `json:"count"`
	Instances []string `json:"instances"`
}

// Pace is the speaking-rate reading for one utterance.
type Pace struct {
	WordsPerMinute float64 `json:"wordsPerMinute"`
	Status         string  `json:"status"`
}

// Result is the live analysis of one spoken utterance.
type Result struct {
	FillerWords FillerWords `json:"fillerWords"`
	Pace        Pace        `json:"pace"`
	Pauses      int         `json:"pauses"`
	Sentiment   string      `json:"sentiment"`
	Feedback    []string    `json:"feedback"`
	Transcript  string      `json:"transcript"`
}

// FillerBreakdown is the per-term filler count for a written answer.
type FillerBreakdown struct {
	Total   int            `json:"total"`
	Details map[string]int `json:"details"`
}

// Analysis describes the speech characteristics of one answer. It is a
// pure function of the answer text.
type Analysis struct {
	FillerWords         FillerBreakdown `json:"fillerWords"`
	WordCount           int             `json:"wordCount"`
	Clarity             string          `json:"clarity"`
	Tone                string          `json:"tone"`
	AvgWordsPerSentence float64         `json:"avgWordsPerSentence"`
}

type fillerPattern struct {
	term string
	re   *regexp.Regexp
}

// Analyzer computes filler, pace, pause and tone metrics from transcript
// text. All keyword patterns are compiled once at construction.
type Analyzer struct {
	fillers       []fillerPattern
	answerFillers []fillerPattern
	tonePriority  []string
	tonePatterns  map[string][]*regexp.Regexp
	pauseRe       *regexp.Regexp
	sentenceRe    *regexp.Regexp
}

func NewAnalyzer(tables lexicon.Tables) *Analyzer {
	a := &Analyzer{
		fillers:       compileFillers(tables.FillerWords),
		answerFillers: compileFillers(tables.AnswerFillerWords),
		tonePriority:  tables.TonePriority,
		tonePatterns:  make(map[string][]*regexp.Regexp, len(tables.ToneIndicators)),
		pauseRe:       regexp.MustCompile(`[.,;:?!]\s`),
		sentenceRe:    regexp.MustCompile(`[.!?]+`),
	}
	for tone, indicators := range tables.ToneIndicators {
		for _, ind := range indicators {
			a.tonePatterns[tone] = append(a.tonePatterns[tone], wordBoundaryPattern(ind))
		}
	}
	return a
}

func compileFillers(terms []string) []fillerPattern {
	patterns := make([]fillerPattern, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, fillerPattern{term: term, re: wordBoundaryPattern(term)})
	}
	return patterns
}

// wordBoundaryPattern matches the term case-insensitively as a whole word
// or phrase, so "so" never matches inside "soften".
func wordBoundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Analyze inspects one spoken utterance: filler words, pace against the
// ideal band, pause frequency, and a short list of coaching sentences.
// The sentiment label comes from the sentiment scorer and only steers the
// feedback wording.
func (a *Analyzer) Analyze(text string, durationMs int64, sentimentLabel string) Result {
	words := strings.Fields(strings.TrimSpace(text))
	wordCount := len(words)

	fillers := FillerWords{Instances: []string{}}
	for _, fp := range a.fillers {
		matches := fp.re.FindAllString(strings.ToLower(text), -1)
		if len(matches) == 0 {
			continue
		}
		fillers.Count += len(matches)
		fillers.Instances = append(fillers.Instances, matches...)
	}

	pace := Pace{Status: PaceUnknown}
	if wordCount > 0 && durationMs > 0 {
		pace.WordsPerMinute = float64(wordCount) / (float64(durationMs) / 60000)
		switch {
		case pace.WordsPerMinute < idealPaceMin:
			pace.Status = PaceTooSlow
		case pace.WordsPerMinute > idealPaceMax:
			pace.Status = PaceTooFast
		default:
			pace.Status = PaceGood
		}
	}

	pauses := len(a.pauseRe.FindAllString(text, -1))

	feedback := a.buildFeedback(fillers, pace, pauses, wordCount, sentimentLabel)

	return Result{
		FillerWords: fillers,
		Pace:        pace,
		Pauses:      pauses,
		Sentiment:   sentimentLabel,
		Feedback:    feedback,
		Transcript:  text,
	}
}

func (a *Analyzer) buildFeedback(fillers FillerWords, pace Pace, pauses, wordCount int, sentimentLabel string) []string {
	var feedback []string

	if fillers.Count > 0 && wordCount > 0 {
		pct := float64(fillers.Count) / float64(wordCount) * 100
		if pct > 10 {
			examples := strings.Join(firstN(fillers.Instances, 3), `", "`)
			feedback = append(feedback, fmt.Sprintf(
				`You used %d filler words (%.1f%% of speech). Try to reduce words like "%s" by pausing instead.`,
				fillers.Count, pct, examples))
		} else if pct > 5 {
			feedback = append(feedback, fmt.Sprintf(
				"You used %d filler words. Try to be more direct in your responses.", fillers.Count))
		}
	}

	switch pace.Status {
	case PaceTooFast:
		feedback = append(feedback, fmt.Sprintf(
			"You're speaking quite fast (%d words/min). Try slowing down to sound more confident.",
			int(math.Round(pace.WordsPerMinute))))
	case PaceTooSlow:
		feedback = append(feedback, fmt.Sprintf(
			"Your pace is a bit slow (%d words/min). Try to be more concise.",
			int(math.Round(pace.WordsPerMinute))))
	}

	if wordCount > 30 && pauses < 2 {
		feedback = append(feedback, "Try adding more pauses in your speech to emphasize key points.")
	}

	switch sentimentLabel {
	case "anxious":
		feedback = append(feedback, "You seem a bit anxious. Take a deep breath before responding to the next question.")
	case "uncertain":
		feedback = append(feedback, "Your response sounds uncertain. Try using more confident language.")
	case "confused":
		feedback = append(feedback, "You sound confused. It's okay to ask for clarification if you don't understand the question.")
	}

	if len(feedback) == 0 {
		if sentimentLabel == "confident" || sentimentLabel == "happy" {
			feedback = append(feedback, "Great job! You sound confident and engaged.")
		} else {
			feedback = append(feedback, "Your response is clear. Keep maintaining good communication.")
		}
	}

	return feedback
}

// AnalyzeAnswer computes the per-answer breakdown stored with each
// question/answer pair: filler counts by term, clarity from sentence
// length, and the dominant tone.
func (a *Analyzer) AnalyzeAnswer(answer string) Analysis {
	details := make(map[string]int)
	total := 0
	for _, fp := range a.answerFillers {
		count := len(fp.re.FindAllString(answer, -1))
		if count > 0 {
			details[fp.term] = count
			total += count
		}
	}

	wordCount := len(strings.Fields(answer))

	sentenceCount := 0
	for _, s := range a.sentenceRe.Split(answer, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	avgWordsPerSentence := 0.0
	if sentenceCount > 0 {
		avgWordsPerSentence = float64(wordCount) / float64(sentenceCount)
	}

	clarity := ClarityGood
	if avgWordsPerSentence > 25 {
		clarity = ClarityVerbose
	} else if avgWordsPerSentence < 5 && wordCount > 10 {
		clarity = ClarityChoppy
	}

	return Analysis{
		FillerWords:         FillerBreakdown{Total: total, Details: details},
		WordCount:           wordCount,
		Clarity:             clarity,
		Tone:                a.dominantTone(answer),
		AvgWordsPerSentence: avgWordsPerSentence,
	}
}

// dominantTone picks the tone with the most indicator matches. Priority
// order breaks ties; no matches at all means neutral.
func (a *Analyzer) dominantTone(text string) string {
	best := "neutral"
	bestCount := 0
	for _, tone := range a.tonePriority {
		count := 0
		for _, re := range a.tonePatterns[tone] {
			count += len(re.FindAllString(text, -1))
		}
		if count > bestCount {
			best = tone
			bestCount = count
		}
	}
	return best
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
