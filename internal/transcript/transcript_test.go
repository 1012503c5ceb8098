package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-feedback/internal/sentiment"
)

func TestExtractPairs(t *testing.T) {
	t.Run("question followed by answer", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleInterviewer, Content: "What is your experience?"},
			{Role: RoleCandidate, Content: "Five years."},
			{Role: RoleInterviewer, Content: "Thanks."},
		}

		pairs := ExtractPairs(turns)
		require.Len(t, pairs, 1)
		assert.Equal(t, "What is your experience?", pairs[0].Question)
		assert.Equal(t, "Five years.", pairs[0].Answer)
	})

	t.Run("trailing question gets empty answer", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleInterviewer, Content: "Why do you want this role?"},
		}

		pairs := ExtractPairs(turns)
		require.Len(t, pairs, 1)
		assert.Equal(t, "", pairs[0].Answer)
	})

	t.Run("question followed by another interviewer turn", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleInterviewer, Content: "Tell me about yourself"},
			{Role: RoleInterviewer, Content: "How did you get started?"},
			{Role: RoleCandidate, Content: "I began as an intern."},
		}

		pairs := ExtractPairs(turns)
		require.Len(t, pairs, 2)
		assert.Equal(t, "", pairs[0].Answer)
		assert.Equal(t, "I began as an intern.", pairs[1].Answer)
	})

	t.Run("opener without question mark counts", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleInterviewer, Content: "Describe a difficult bug you fixed"},
			{Role: RoleCandidate, Content: "A race condition in the scheduler."},
		}

		pairs := ExtractPairs(turns)
		require.Len(t, pairs, 1)
	})

	t.Run("non-question interviewer turns are skipped", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleInterviewer, Content: "Welcome to the interview."},
			{Role: RoleCandidate, Content: "Thank you."},
		}

		assert.Empty(t, ExtractPairs(turns))
	})

	t.Run("candidate turns never start a pair", func(t *testing.T) {
		turns := []Turn{
			{Role: RoleCandidate, Content: "Can you repeat that?"},
		}

		assert.Empty(t, ExtractPairs(turns))
	})
}

func TestAttachSentiment(t *testing.T) {
	pairs := []QuestionAnswerPair{
		{Question: "What did you work on?", Answer: "I led the migration project"},
		{Question: "Anything else?", Answer: ""},
	}

	t.Run("superstring sample matches", func(t *testing.T) {
		samples := []sentiment.Sample{
			{Transcript: "Well, I led the migration project last year", Emotion: "confident", Score: 0.4, Confidence: 0.8},
		}

		attached := AttachSentiment(pairs, samples)
		require.NotNil(t, attached[0].Sentiment)
		assert.Equal(t, "confident", attached[0].Sentiment.Emotion)
		assert.Equal(t, 0.4, attached[0].Sentiment.Score)
		assert.Nil(t, attached[1].Sentiment)
	})

	t.Run("first matching sample wins", func(t *testing.T) {
		samples := []sentiment.Sample{
			{Transcript: "I led the migration", Emotion: "neutral"},
			{Transcript: "I led the migration project", Emotion: "happy"},
		}

		attached := AttachSentiment(pairs, samples)
		require.NotNil(t, attached[0].Sentiment)
		assert.Equal(t, "neutral", attached[0].Sentiment.Emotion)
	})

	t.Run("no match leaves nil score", func(t *testing.T) {
		samples := []sentiment.Sample{
			{Transcript: "completely unrelated speech", Emotion: "sad"},
		}

		attached := AttachSentiment(pairs, samples)
		assert.Nil(t, attached[0].Sentiment)
	})

	t.Run("no samples returns input unchanged", func(t *testing.T) {
		attached := AttachSentiment(pairs, nil)
		assert.Equal(t, pairs, attached)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		samples := []sentiment.Sample{
			{Transcript: "I led the migration project", Emotion: "happy"},
		}

		_ = AttachSentiment(pairs, samples)
		assert.Nil(t, pairs[0].Sentiment)
	})
}

func TestParseTurns(t *testing.T) {
	text := `Interviewer: What is your greatest strength?
Candidate: I stay calm under pressure.
And I communicate early when things slip.

AI: How do you handle conflict?
User: I listen first.
System: recording paused`

	turns := ParseTurns(text)
	require.Len(t, turns, 5)

	assert.Equal(t, RoleInterviewer, turns[0].Role)
	assert.Equal(t, "What is your greatest strength?", turns[0].Content)

	// Continuation line folds into the previous turn.
	assert.Equal(t, RoleCandidate, turns[1].Role)
	assert.Equal(t, "I stay calm under pressure. And I communicate early when things slip.", turns[1].Content)

	// Alias prefixes map onto the canonical roles.
	assert.Equal(t, RoleInterviewer, turns[2].Role)
	assert.Equal(t, RoleCandidate, turns[3].Role)
	assert.Equal(t, RoleSystem, turns[4].Role)
}

func TestParseTurns_LeadingContinuationIsDropped(t *testing.T) {
	turns := ParseTurns("stray line with no speaker\nInterviewer: What now?")
	require.Len(t, turns, 1)
	assert.Equal(t, RoleInterviewer, turns[0].Role)
}
