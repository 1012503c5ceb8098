package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Feedback pipeline
	mux.HandleFunc("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			a.CreateFeedbackHandler(w, r)
		case http.MethodGet:
			a.GetFeedbackHandler(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/feedback/report", a.FeedbackReportHandler)

	// Interview records
	mux.HandleFunc("/api/interviews", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			a.CreateInterviewHandler(w, r)
		case http.MethodGet:
			a.ListInterviewsHandler(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/interviews/latest", a.LatestInterviewsHandler)

	// Live speech analysis & transcript parsing
	mux.HandleFunc("/api/speech/analyze", a.AnalyzeSpeechHandler)
	mux.HandleFunc("/api/transcript/upload", a.TranscriptUploadHandler)

	return mux
}
