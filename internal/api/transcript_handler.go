package api

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"
)

// TranscriptUploadHandler parses an uploaded transcript document
// @Summary Upload and parse transcript
// @Description Upload a transcript file (PDF/DOCX/TXT) and split it into speaker turns
// @Tags transcript
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Transcript file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /transcript/upload [post]
func (a *API) TranscriptUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	parsed, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse transcript: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Transcript parsed: %s (%d turns, %d bytes text)",
		parsed.Filename, len(parsed.Turns), len(parsed.FullText))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"filename":           parsed.Filename,
		"file_type":          parsed.FileType,
		"file_size":          parsed.FileSize,
		"text_length":        len(parsed.FullText),
		"turns":              parsed.Turns,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	})
}
