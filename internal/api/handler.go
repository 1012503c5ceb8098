package api

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"

	"interview-feedback/internal/config"
	"interview-feedback/internal/feedback"
	"interview-feedback/internal/lexicon"
	"interview-feedback/internal/llm"
	"interview-feedback/internal/sentiment"
	"interview-feedback/internal/speech"
	"interview-feedback/internal/storage"
	"interview-feedback/internal/transcript"
)

type API struct {
	db           *storage.DB
	parser       *transcript.Parser
	scorer       *sentiment.Scorer
	analyzer     *speech.Analyzer
	synthesizer  *feedback.Synthesizer
	orchestrator *feedback.Service
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	tables := lexicon.Default()

	scorer := sentiment.NewScorer(tables)
	analyzer := speech.NewAnalyzer(tables)
	synthesizer := feedback.NewSynthesizer(tables, rand.New(rand.NewSource(rand.Int63())))

	// Initialize LLM service (if configured)
	var llmSvc *llm.Service
	if cfg.LLMProvider != "" && cfg.LLMProvider != "none" {
		llmSvc = llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
		log.Printf("LLM service initialized (provider: %s, model: %s)", cfg.LLMProvider, cfg.LLMModel)
	} else {
		log.Println("Warning: LLM provider not configured, feedback generation will fail")
	}

	var orchestrator *feedback.Service
	if llmSvc != nil {
		orchestrator = feedback.NewService(llmSvc, db, analyzer, cfg.EnhanceConcurrency)
	}

	return &API{
		db:           db,
		parser:       transcript.NewParser(cfg.UploadsDir),
		scorer:       scorer,
		analyzer:     analyzer,
		synthesizer:  synthesizer,
		orchestrator: orchestrator,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
