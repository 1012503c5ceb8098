package lexicon

// Tables holds the static keyword lists used by the analysis pipeline.
// Components receive a Tables value at construction instead of reading
// package-level state, so tests can swap in smaller lists.
type Tables struct {
	// Polarity maps lowercase words to sentiment weights (-5..5).
	Polarity map[string]int

	// FillerWords is the full list checked by the live speech analyzer.
	// Multi-word phrases are allowed and matched on word boundaries.
	FillerWords []string

	// AnswerFillerWords is the shorter list used for per-answer breakdowns.
	AnswerFillerWords []string

	// ToneIndicators maps tone names to their keyword lists. TonePriority
	// fixes the evaluation order so ties resolve deterministically.
	ToneIndicators map[string][]string
	TonePriority   []string

	// Emotion marker phrases, checked in order: anxious, confused, confident.
	AnxiousMarkers   []string
	ConfusedMarkers  []string
	ConfidentMarkers []string

	// Linguistic patterns flagged by the feedback synthesizer.
	HedgingPatterns []string
	PassivePatterns []string
}

// Default returns the standard tables. Callers get a fresh value each time;
// nothing here is shared or mutated after construction.
func Default() Tables {
	return Tables{
		Polarity:          polarityWeights(),
		FillerWords:       fillerWords(),
		AnswerFillerWords: answerFillerWords(),
		ToneIndicators:    toneIndicators(),
		TonePriority:      []string{"confident", "uncertain", "formal", "casual"},
		AnxiousMarkers:    []string{"anxious", "nervous", "worried", "stress", "afraid"},
		ConfusedMarkers:   []string{"confused", "not sure", "don't understand", "difficult to", "unclear"},
		ConfidentMarkers:  []string{"confident", "certain", "definitely", "absolutely", "i know"},
		HedgingPatterns: []string{
			"sort of", "kind of", "i guess", "maybe", "possibly", "probably",
			"somewhat", "i think", "i believe", "in my opinion",
		},
		PassivePatterns: []string{
			"was done", "were made", "has been", "have been",
			"was created", "were developed", "was implemented",
		},
	}
}

func fillerWords() []string {
	return []string{
		"um", "uh", "like", "you know", "so", "actually", "basically",
		"literally", "i mean", "sort of", "kind of", "i guess", "right",
	}
}

func answerFillerWords() []string {
	return []string{
		"um", "uh", "like", "you know", "so", "actually", "basically", "literally",
	}
}

func toneIndicators() map[string][]string {
	return map[string][]string{
		"confident": {"certainly", "definitely", "absolutely", "confident", "sure", "know"},
		"uncertain": {"maybe", "perhaps", "possibly", "might", "could be", "not sure", "guess"},
		"formal":    {"therefore", "moreover", "consequently", "thus", "hence"},
		"casual":    {"pretty", "cool", "stuff", "thing", "kinda", "sorta"},
	}
}

// polarityWeights is an AFINN-style word list trimmed to vocabulary that
// shows up in interview answers.
func polarityWeights() map[string]int {
	return map[string]int{
		// positive
		"able":          1,
		"accomplish":    2,
		"accomplished":  2,
		"achieve":       2,
		"achieved":      2,
		"achievement":   2,
		"adaptable":     2,
		"amazing":       4,
		"ambitious":     2,
		"appreciate":    2,
		"awesome":       4,
		"best":          3,
		"better":        2,
		"brilliant":     4,
		"calm":          2,
		"capable":       2,
		"clear":         1,
		"collaborative": 2,
		"comfortable":   2,
		"committed":     2,
		"competent":     2,
		"confident":     2,
		"creative":      2,
		"curious":       1,
		"dedicated":     2,
		"delivered":     2,
		"dependable":    2,
		"determined":    2,
		"eager":         2,
		"effective":     2,
		"efficient":     2,
		"energetic":     2,
		"engaged":       2,
		"engaging":      2,
		"enjoy":         2,
		"enjoyed":       2,
		"enthusiastic":  3,
		"excellent":     3,
		"excited":       3,
		"exciting":      3,
		"experienced":   2,
		"expert":        2,
		"fantastic":     4,
		"fast":          1,
		"flexible":      1,
		"focused":       2,
		"fortunate":     2,
		"glad":          3,
		"good":          3,
		"great":         3,
		"grew":          1,
		"growth":        2,
		"happy":         3,
		"helpful":       2,
		"honest":        2,
		"impressive":    3,
		"improve":       2,
		"improved":      2,
		"improvement":   1,
		"innovative":    2,
		"inspired":      2,
		"interested":    2,
		"interesting":   2,
		"keen":          1,
		"lead":          1,
		"learn":         1,
		"learned":       1,
		"love":          3,
		"loved":         3,
		"motivated":     2,
		"optimistic":    2,
		"organized":     2,
		"outstanding":   5,
		"passion":       3,
		"passionate":    3,
		"perfect":       3,
		"pleased":       3,
		"positive":      2,
		"proactive":     2,
		"productive":    2,
		"professional":  2,
		"proud":         2,
		"reliable":      2,
		"resilient":     2,
		"resourceful":   2,
		"respected":     2,
		"responsible":   2,
		"rewarding":     2,
		"skilled":       2,
		"smart":         1,
		"solid":         2,
		"solved":        2,
		"strong":        2,
		"succeed":       3,
		"success":       2,
		"successful":    3,
		"successfully":  3,
		"superb":        5,
		"supportive":    2,
		"sure":          1,
		"talented":      2,
		"thorough":      2,
		"thrilled":      5,
		"valuable":      2,
		"win":           4,
		"won":           3,
		"wonderful":     4,

		// negative
		"afraid":       -2,
		"angry":        -3,
		"annoyed":      -2,
		"anxious":      -2,
		"awful":        -3,
		"bad":          -3,
		"blame":        -2,
		"boring":       -3,
		"broke":        -1,
		"burned":       -1,
		"challenge":    -1,
		"chaos":        -2,
		"confused":     -2,
		"conflict":     -2,
		"difficult":    -1,
		"disappointed": -2,
		"discouraged":  -2,
		"doubt":        -1,
		"doubtful":     -1,
		"dread":        -2,
		"exhausted":    -2,
		"fail":         -2,
		"failed":       -2,
		"failure":      -2,
		"fear":         -2,
		"fired":        -2,
		"frustrated":   -2,
		"frustrating":  -2,
		"hard":         -1,
		"hate":         -3,
		"hated":        -3,
		"helpless":     -2,
		"horrible":     -3,
		"impossible":   -2,
		"inadequate":   -2,
		"insecure":     -2,
		"lost":         -3,
		"mess":         -2,
		"messy":        -2,
		"miserable":    -3,
		"mistake":      -2,
		"mistakes":     -2,
		"nervous":      -2,
		"overwhelmed":  -2,
		"panic":        -3,
		"poor":         -2,
		"pressure":     -1,
		"problem":      -2,
		"problems":     -2,
		"regret":       -2,
		"sad":          -2,
		"scared":       -2,
		"stress":       -1,
		"stressed":     -2,
		"stressful":    -2,
		"struggle":     -2,
		"struggled":    -2,
		"stuck":        -2,
		"terrible":     -3,
		"tired":        -2,
		"uncertain":    -1,
		"uncomfortable": -2,
		"unclear":      -1,
		"unhappy":      -2,
		"unsure":       -1,
		"upset":        -2,
		"weak":         -2,
		"worried":      -3,
		"worry":        -3,
		"worst":        -3,
		"wrong":        -2,
	}
}
