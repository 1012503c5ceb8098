package api

import (
	"encoding/json"
	"net/http"
)

type analyzeSpeechRequest struct {
	Transcript string `json:"transcript"`
	DurationMs int64  `json:"durationMs"`
}

// AnalyzeSpeechHandler analyzes one live utterance
// @Summary Analyze an utterance
// @Description Sentiment scoring plus speech metrics (fillers, pace, pauses) and synthesized coaching feedback for one candidate utterance
// @Tags speech
// @Accept json
// @Produce json
// @Param request body analyzeSpeechRequest true "Utterance text and elapsed speaking time"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /speech/analyze [post]
func (a *API) AnalyzeSpeechHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeSpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Transcript == "" {
		http.Error(w, "transcript is required", http.StatusBadRequest)
		return
	}

	mood := a.scorer.Analyze(req.Transcript)
	analysis := a.analyzer.Analyze(req.Transcript, req.DurationMs, mood.Emotion)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sentiment":         mood,
		"analysis":          analysis,
		"detailed_feedback": a.synthesizer.Synthesize(analysis),
	})
}
