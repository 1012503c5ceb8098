package transcript

import (
	"interview-feedback/internal/sentiment"
	"interview-feedback/internal/speech"
)

// Speaker roles in an interview transcript.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
	RoleSystem      = "system"
)

// Turn is one utterance in the interview, in arrival order.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuestionAnswerPair joins an interviewer question with the candidate's
// answer. Sentiment is nil until a sample is attached.
type QuestionAnswerPair struct {
	Question  string           `json:"question"`
	Answer    string           `json:"answer"`
	Sentiment *sentiment.Score `json:"sentimentScore"`
}

// EnhancedPair adds the per-answer speech analysis and the generated
// ideal answer. Built once per session, immutable after creation.
type EnhancedPair struct {
	QuestionAnswerPair
	SpeechAnalysis speech.Analysis `json:"speechAnalysis"`
	IdealAnswer    string          `json:"idealAnswer"`
}
