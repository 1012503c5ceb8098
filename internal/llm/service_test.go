package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluationFixture() Evaluation {
	return Evaluation{
		TotalScore: 72,
		CategoryScores: []CategoryScore{
			{Name: "Communication Skills", Score: 75, Comment: "clear"},
			{Name: "Technical Knowledge", Score: 70, Comment: "solid"},
			{Name: "Problem-Solving", Score: 68, Comment: "methodical"},
			{Name: "Cultural & Role Fit", Score: 74, Comment: "good match"},
			{Name: "Confidence & Clarity", Score: 73, Comment: "composed"},
		},
	}
}

func TestValidateEvaluation(t *testing.T) {
	t.Run("well-formed response passes", func(t *testing.T) {
		eval := evaluationFixture()
		assert.NoError(t, validateEvaluation(&eval))
	})

	t.Run("missing category", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores = eval.CategoryScores[:4]
		err := validateEvaluation(&eval)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 5 category scores")
	})

	t.Run("extra category", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores = append(eval.CategoryScores, CategoryScore{Name: "Punctuality", Score: 50})
		assert.Error(t, validateEvaluation(&eval))
	})

	t.Run("renamed category", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores[1].Name = "Technical Skills"
		err := validateEvaluation(&eval)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Technical Knowledge"`)
	})

	t.Run("categories out of order", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores[0], eval.CategoryScores[1] = eval.CategoryScores[1], eval.CategoryScores[0]
		assert.Error(t, validateEvaluation(&eval))
	})

	t.Run("score above range", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores[2].Score = 101
		assert.Error(t, validateEvaluation(&eval))
	})

	t.Run("negative score", func(t *testing.T) {
		eval := evaluationFixture()
		eval.CategoryScores[0].Score = -1
		assert.Error(t, validateEvaluation(&eval))
	})

	t.Run("total score out of range", func(t *testing.T) {
		eval := evaluationFixture()
		eval.TotalScore = 120
		err := validateEvaluation(&eval)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalScore")
	})

	t.Run("boundary scores are valid", func(t *testing.T) {
		eval := evaluationFixture()
		eval.TotalScore = 0
		eval.CategoryScores[0].Score = 0
		eval.CategoryScores[4].Score = 100
		assert.NoError(t, validateEvaluation(&eval))
	})
}

func TestGenerate_UnconfiguredProvider(t *testing.T) {
	svc := NewService("none", "", "")
	_, err := svc.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestGenerate_UnknownProvider(t *testing.T) {
	svc := NewService("bedrock", "key", "model")
	_, err := svc.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestEvaluationPrompt(t *testing.T) {
	prompt := evaluationPrompt("- interviewer: What is Go?\n- candidate: A language.\n")

	assert.Contains(t, prompt, "- interviewer: What is Go?")
	for _, name := range CategoryNames {
		assert.Contains(t, prompt, name)
	}
	assert.Contains(t, prompt, `"totalScore"`)
	assert.Contains(t, prompt, "Do not add categories")
}

func TestIdealAnswerPrompt(t *testing.T) {
	prompt := idealAnswerPrompt("What is a mutex?")
	assert.Contains(t, prompt, `Question: "What is a mutex?"`)
	assert.Contains(t, prompt, `{"modelAnswer": ""}`)
}
