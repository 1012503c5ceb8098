package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"interview-feedback/internal/storage"
)

const defaultLatestLimit = 20

// CreateInterviewHandler stores a new interview session
// @Summary Create interview
// @Description Store a new interview session record
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body storage.Interview true "Interview metadata"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /interviews [post]
func (a *API) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	var iv storage.Interview
	if err := json.NewDecoder(r.Body).Decode(&iv); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if iv.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	if iv.CreatedAt.IsZero() {
		iv.CreatedAt = time.Now().UTC()
	}

	if err := a.db.SaveInterview(r.Context(), &iv); err != nil {
		log.Printf("Failed to save interview: %v", err)
		http.Error(w, "failed to save interview", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"interview_id": iv.ID})
}

// ListInterviewsHandler lists one user's interviews
// @Summary List interviews
// @Description List a user's interviews, newest first
// @Tags interviews
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} storage.Interview
// @Router /interviews [get]
func (a *API) ListInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	interviews, err := a.db.GetInterviewsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list interviews: %v", err)
		http.Error(w, "failed to list interviews", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, interviews)
}

// LatestInterviewsHandler lists recent interviews from other users
// @Summary Latest interviews
// @Description Finalized interviews from other users, newest first
// @Tags interviews
// @Produce json
// @Param user_id query string true "User ID to exclude"
// @Param limit query int false "Result limit (default 20)"
// @Success 200 {array} storage.Interview
// @Router /interviews/latest [get]
func (a *API) LatestInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	limit := defaultLatestLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	interviews, err := a.db.GetLatestInterviews(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Failed to list latest interviews: %v", err)
		http.Error(w, "failed to list interviews", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, interviews)
}
