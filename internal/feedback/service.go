package feedback

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"interview-feedback/internal/llm"
	"interview-feedback/internal/sentiment"
	"interview-feedback/internal/speech"
	"interview-feedback/internal/storage"
	"interview-feedback/internal/transcript"
)

// idealAnswerFallback substitutes for a failed ideal-answer generation.
const idealAnswerFallback = "Could not generate an ideal answer for this question."

const defaultEnhanceConcurrency = 3

// Generator is the external generative service the orchestrator depends on.
type Generator interface {
	GenerateEvaluation(ctx context.Context, formattedTranscript string) (*llm.Evaluation, error)
	GenerateIdealAnswer(ctx context.Context, question string) (string, error)
}

// Store persists finished feedback records.
type Store interface {
	SaveFeedback(ctx context.Context, f *storage.Feedback) error
}

// Service runs the feedback pipeline: segment the transcript, attach
// sentiment samples, enhance each complete pair, request the aggregate
// evaluation, and persist the record. The whole run is all-or-nothing;
// only per-pair enhancement failures are absorbed.
type Service struct {
	generator   Generator
	store       Store
	analyzer    *speech.Analyzer
	concurrency int
}

// CreateRequest carries everything gathered during one interview session.
type CreateRequest struct {
	InterviewID   string             `json:"interviewId"`
	UserID        string             `json:"userId"`
	Transcript    []transcript.Turn  `json:"transcript"`
	SentimentData []sentiment.Sample `json:"sentimentData"`
}

func NewService(generator Generator, store Store, analyzer *speech.Analyzer, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = defaultEnhanceConcurrency
	}
	return &Service{
		generator:   generator,
		store:       store,
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// CreateFeedback runs the pipeline for one session and returns the stored
// record's ID. On any error nothing is persisted.
func (s *Service) CreateFeedback(ctx context.Context, req CreateRequest) (string, error) {
	pairs := transcript.ExtractPairs(req.Transcript)
	log.Printf("[Orchestrator] Extracted %d question/answer pairs from %d turns", len(pairs), len(req.Transcript))

	pairs = transcript.AttachSentiment(pairs, req.SentimentData)

	complete := pairs[:0:0]
	for _, pair := range pairs {
		if pair.Question == "" || pair.Answer == "" {
			continue
		}
		complete = append(complete, pair)
	}

	enhanced := s.enhancePairs(ctx, complete)
	log.Printf("[Orchestrator] Enhanced %d pairs", len(enhanced))

	eval, err := s.generator.GenerateEvaluation(ctx, formatTranscript(req.Transcript))
	if err != nil {
		return "", fmt.Errorf("evaluation failed: %w", err)
	}

	record := &storage.Feedback{
		ID:                  uuid.New().String(),
		InterviewID:         req.InterviewID,
		UserID:              req.UserID,
		TotalScore:          eval.TotalScore,
		CategoryScores:      eval.CategoryScores,
		Strengths:           eval.Strengths,
		AreasForImprovement: eval.AreasForImprovement,
		FinalAssessment:     eval.FinalAssessment,
		SentimentAnalysis:   req.SentimentData,
		QuestionsAndAnswers: enhanced,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.store.SaveFeedback(ctx, record); err != nil {
		return "", fmt.Errorf("failed to save feedback: %w", err)
	}

	log.Printf("[Orchestrator] Feedback %s saved for interview %s", record.ID, req.InterviewID)
	return record.ID, nil
}

// enhancePairs computes the speech analysis and ideal answer for each pair.
// Pairs are processed with bounded concurrency; a failed ideal-answer call
// falls back to a placeholder and never blocks sibling pairs. Output order
// matches input order.
func (s *Service) enhancePairs(ctx context.Context, pairs []transcript.QuestionAnswerPair) []transcript.EnhancedPair {
	if len(pairs) == 0 {
		return []transcript.EnhancedPair{}
	}

	enhanced := make([]transcript.EnhancedPair, len(pairs))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair transcript.QuestionAnswerPair) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			analysis := s.analyzer.AnalyzeAnswer(pair.Answer)

			ideal, err := s.generator.GenerateIdealAnswer(ctx, pair.Question)
			if err != nil {
				log.Printf("[Orchestrator] Ideal answer generation failed for pair %d: %v", i, err)
				ideal = idealAnswerFallback
			}

			enhanced[i] = transcript.EnhancedPair{
				QuestionAnswerPair: pair,
				SpeechAnalysis:     analysis,
				IdealAnswer:        ideal,
			}
		}(i, pair)
	}

	wg.Wait()
	return enhanced
}

// formatTranscript renders the turns as the bullet list the evaluation
// prompt expects.
func formatTranscript(turns []transcript.Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(fmt.Sprintf("- %s: %s\n", turn.Role, turn.Content))
	}
	return b.String()
}
