package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	httpclient "interview-feedback/pkg/http"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

// CategoryNames is the fixed evaluation rubric, in report order. The
// scoring response must contain exactly these five categories.
var CategoryNames = []string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem-Solving",
	"Cultural & Role Fit",
	"Confidence & Clarity",
}

type Service struct {
	provider Provider
	apiKey   string
	model    string
	client   *httpclient.Client
	timeout  time.Duration
}

// CategoryScore is one scored rubric dimension.
type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Evaluation is the aggregate structured assessment of one interview.
type Evaluation struct {
	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
}

func NewService(provider, apiKey, model string) *Service {
	timeout := 60 * time.Second
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		client:   httpclient.NewClient(timeout),
		timeout:  timeout,
	}
}

// Generate sends a prompt to the configured provider and returns the raw
// response text.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if s.provider == ProviderNone {
		return "", fmt.Errorf("LLM provider not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch s.provider {
	case ProviderOpenAI:
		return s.callChatCompletions(ctx, "https://api.openai.com/v1/chat/completions", prompt)
	case ProviderGroq:
		return s.callChatCompletions(ctx, "https://api.groq.com/openai/v1/chat/completions", prompt)
	case ProviderOllama:
		return s.callOllama(ctx, prompt)
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

// GenerateEvaluation scores the interview transcript against the fixed
// rubric. The response must conform exactly to the schema: exactly five
// category scores with the expected names, in order. Anything else is an
// error and the caller treats the whole attempt as failed.
func (s *Service) GenerateEvaluation(ctx context.Context, formattedTranscript string) (*Evaluation, error) {
	response, err := s.Generate(ctx, evaluationPrompt(formattedTranscript))
	if err != nil {
		return nil, err
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(response), &eval); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	if err := validateEvaluation(&eval); err != nil {
		return nil, fmt.Errorf("evaluation response violates schema: %w", err)
	}

	return &eval, nil
}

// GenerateIdealAnswer produces a model answer for a single question.
func (s *Service) GenerateIdealAnswer(ctx context.Context, question string) (string, error) {
	response, err := s.Generate(ctx, idealAnswerPrompt(question))
	if err != nil {
		return "", err
	}

	var parsed struct {
		ModelAnswer string `json:"modelAnswer"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse ideal answer response: %w", err)
	}
	if parsed.ModelAnswer == "" {
		return "", fmt.Errorf("empty modelAnswer in response")
	}

	return parsed.ModelAnswer, nil
}

func validateEvaluation(eval *Evaluation) error {
	if len(eval.CategoryScores) != len(CategoryNames) {
		return fmt.Errorf("expected %d category scores, got %d", len(CategoryNames), len(eval.CategoryScores))
	}
	for i, cs := range eval.CategoryScores {
		if cs.Name != CategoryNames[i] {
			return fmt.Errorf("category %d: expected %q, got %q", i, CategoryNames[i], cs.Name)
		}
		if cs.Score < 0 || cs.Score > 100 {
			return fmt.Errorf("category %q: score %d out of range", cs.Name, cs.Score)
		}
	}
	if eval.TotalScore < 0 || eval.TotalScore > 100 {
		return fmt.Errorf("totalScore %d out of range", eval.TotalScore)
	}
	return nil
}

func evaluationPrompt(formattedTranscript string) string {
	var b strings.Builder
	b.WriteString("You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.\n\n")
	b.WriteString("Transcript:\n")
	b.WriteString(formattedTranscript)
	b.WriteString("\n\nPlease score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:\n")
	b.WriteString("- **Communication Skills**: Clarity, articulation, structured responses.\n")
	b.WriteString("- **Technical Knowledge**: Understanding of key concepts for the role.\n")
	b.WriteString("- **Problem-Solving**: Ability to analyze problems and propose solutions.\n")
	b.WriteString("- **Cultural & Role Fit**: Alignment with company values and job role.\n")
	b.WriteString("- **Confidence & Clarity**: Confidence in responses, engagement, and clarity.\n\n")
	b.WriteString("Return ONLY valid JSON (no markdown, no explanation) with this exact structure:\n")
	b.WriteString(`{
  "totalScore": 0,
  "categoryScores": [
    {"name": "Communication Skills", "score": 0, "comment": ""},
    {"name": "Technical Knowledge", "score": 0, "comment": ""},
    {"name": "Problem-Solving", "score": 0, "comment": ""},
    {"name": "Cultural & Role Fit", "score": 0, "comment": ""},
    {"name": "Confidence & Clarity", "score": 0, "comment": ""}
  ],
  "strengths": [""],
  "areasForImprovement": [""],
  "finalAssessment": ""
}`)
	return b.String()
}

func idealAnswerPrompt(question string) string {
	return fmt.Sprintf(`As an expert interviewer, provide a concise, professional model answer to the following interview question. The answer should be technically accurate, well-structured, and demonstrate deep knowledge.

Question: "%s"

Provide a model answer that would impress an interviewer. Keep it under 150 words.

Return ONLY valid JSON with this structure:
{"modelAnswer": ""}`, question)
}

func (s *Service) callChatCompletions(ctx context.Context, endpoint, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a professional interviewer analyzing a mock interview. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("LLM error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"http://localhost:11434/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
