package storage

import (
	"time"

	"interview-feedback/internal/llm"
	"interview-feedback/internal/sentiment"
	"interview-feedback/internal/transcript"
)

// Feedback is one stored feedback record. Created once per
// (interview, user) pair and read-only thereafter.
type Feedback struct {
	ID                  string                    `json:"id"`
	InterviewID         string                    `json:"interviewId"`
	UserID              string                    `json:"userId"`
	TotalScore          int                       `json:"totalScore"`
	CategoryScores      []llm.CategoryScore       `json:"categoryScores"`
	Strengths           []string                  `json:"strengths"`
	AreasForImprovement []string                  `json:"areasForImprovement"`
	FinalAssessment     string                    `json:"finalAssessment"`
	SentimentAnalysis   []sentiment.Sample        `json:"sentimentAnalysis"`
	QuestionsAndAnswers []transcript.EnhancedPair `json:"questionsAndAnswers"`
	CreatedAt           time.Time                 `json:"createdAt"`
}

// Interview is the stored interview session metadata.
type Interview struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Level     string    `json:"level"`
	Type      string    `json:"type"`
	Techstack []string  `json:"techstack"`
	Questions []string  `json:"questions"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"createdAt"`
}
