package api

import (
	"encoding/json"
	"log"
	"net/http"

	"interview-feedback/internal/feedback"
	"interview-feedback/internal/sentiment"
)

// CreateFeedbackHandler runs the feedback pipeline for a finished session
// @Summary Create interview feedback
// @Description Segment the transcript, analyze answers, score the interview with the LLM, and persist the feedback record
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body feedback.CreateRequest true "Session transcript and sentiment samples"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /feedback [post]
func (a *API) CreateFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req feedback.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.InterviewID == "" || req.UserID == "" {
		http.Error(w, "interviewId and userId are required", http.StatusBadRequest)
		return
	}

	if a.orchestrator == nil {
		http.Error(w, "feedback generation not available (LLM not configured)", http.StatusServiceUnavailable)
		return
	}

	feedbackID, err := a.orchestrator.CreateFeedback(r.Context(), req)
	if err != nil {
		// All-or-nothing: the caller only learns that the attempt failed
		// and can redirect to a safe fallback view.
		log.Printf("Error saving feedback: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"feedback_id": feedbackID,
	})
}

// GetFeedbackHandler fetches one feedback record
// @Summary Get feedback
// @Description Fetch the feedback record for an interview and user
// @Tags feedback
// @Produce json
// @Param interview_id query string true "Interview ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} storage.Feedback
// @Failure 404 {object} map[string]string
// @Router /feedback [get]
func (a *API) GetFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	interviewID := r.URL.Query().Get("interview_id")
	userID := r.URL.Query().Get("user_id")
	if interviewID == "" || userID == "" {
		http.Error(w, "interview_id and user_id are required", http.StatusBadRequest)
		return
	}

	record, err := a.db.GetFeedbackByInterviewAndUser(r.Context(), interviewID, userID)
	if err != nil {
		log.Printf("Failed to load feedback: %v", err)
		http.Error(w, "failed to load feedback", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "feedback not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// FeedbackReportHandler builds the full report view
// @Summary Get feedback report
// @Description Feedback record plus the sentiment chart aggregates (emotion distribution, average score by emotion, timeline)
// @Tags feedback
// @Produce json
// @Param interview_id query string true "Interview ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /feedback/report [get]
func (a *API) FeedbackReportHandler(w http.ResponseWriter, r *http.Request) {
	interviewID := r.URL.Query().Get("interview_id")
	userID := r.URL.Query().Get("user_id")
	if interviewID == "" || userID == "" {
		http.Error(w, "interview_id and user_id are required", http.StatusBadRequest)
		return
	}

	record, err := a.db.GetFeedbackByInterviewAndUser(r.Context(), interviewID, userID)
	if err != nil {
		log.Printf("Failed to load feedback: %v", err)
		http.Error(w, "failed to load feedback", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "feedback not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"feedback": record,
		"charts": map[string]interface{}{
			"emotion_distribution":     sentiment.EmotionDistribution(record.SentimentAnalysis),
			"average_score_by_emotion": sentiment.AverageScoreByEmotion(record.SentimentAnalysis),
			"timeline":                 sentiment.Timeline(record.SentimentAnalysis),
		},
	})
}
