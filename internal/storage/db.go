package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// SaveFeedback appends one feedback record. The table carries a unique
// constraint on (interview_id, user_id), so a second write for the same
// pair fails instead of overwriting.
func (db *DB) SaveFeedback(ctx context.Context, f *Feedback) error {
	categoryScores, err := json.Marshal(f.CategoryScores)
	if err != nil {
		return fmt.Errorf("marshal category scores: %w", err)
	}
	strengths, err := json.Marshal(f.Strengths)
	if err != nil {
		return fmt.Errorf("marshal strengths: %w", err)
	}
	areas, err := json.Marshal(f.AreasForImprovement)
	if err != nil {
		return fmt.Errorf("marshal areas for improvement: %w", err)
	}
	sentimentAnalysis, err := json.Marshal(f.SentimentAnalysis)
	if err != nil {
		return fmt.Errorf("marshal sentiment analysis: %w", err)
	}
	questionsAndAnswers, err := json.Marshal(f.QuestionsAndAnswers)
	if err != nil {
		return fmt.Errorf("marshal questions and answers: %w", err)
	}

	query := `INSERT INTO feedback
                (id, interview_id, user_id, total_score, category_scores, strengths,
                 areas_for_improvement, final_assessment, sentiment_analysis,
                 questions_and_answers, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = db.connection.ExecContext(ctx, query,
		f.ID,
		f.InterviewID,
		f.UserID,
		f.TotalScore,
		categoryScores,
		strengths,
		areas,
		f.FinalAssessment,
		sentimentAnalysis,
		questionsAndAnswers,
		f.CreatedAt,
	)
	return err
}

// GetFeedbackByInterviewAndUser returns the single feedback record for the
// pair, or nil when none exists.
func (db *DB) GetFeedbackByInterviewAndUser(ctx context.Context, interviewID, userID string) (*Feedback, error) {
	query := `SELECT id, interview_id, user_id, total_score, category_scores, strengths,
                     areas_for_improvement, final_assessment, sentiment_analysis,
                     questions_and_answers, created_at
              FROM feedback
              WHERE interview_id = $1 AND user_id = $2
              LIMIT 1`

	row := db.connection.QueryRowContext(ctx, query, interviewID, userID)

	f, err := scanFeedback(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return f, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFeedback(row rowScanner) (*Feedback, error) {
	f := &Feedback{}
	var categoryScores, strengths, areas, sentimentAnalysis, questionsAndAnswers []byte

	err := row.Scan(&f.ID, &f.InterviewID, &f.UserID, &f.TotalScore, &categoryScores,
		&strengths, &areas, &f.FinalAssessment, &sentimentAnalysis,
		&questionsAndAnswers, &f.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := unmarshalColumn(categoryScores, &f.CategoryScores); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(strengths, &f.Strengths); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(areas, &f.AreasForImprovement); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(sentimentAnalysis, &f.SentimentAnalysis); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(questionsAndAnswers, &f.QuestionsAndAnswers); err != nil {
		return nil, err
	}

	return f, nil
}

func unmarshalColumn(data []byte, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// SaveInterview stores one interview session record.
func (db *DB) SaveInterview(ctx context.Context, iv *Interview) error {
	questions, err := json.Marshal(iv.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	query := `INSERT INTO interviews
                (id, user_id, role, level, type, techstack, questions, finalized, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = db.connection.ExecContext(ctx, query,
		iv.ID,
		iv.UserID,
		iv.Role,
		iv.Level,
		iv.Type,
		strings.Join(iv.Techstack, ","),
		questions,
		iv.Finalized,
		iv.CreatedAt,
	)
	return err
}

// GetInterviewByID returns one interview, or nil when it doesn't exist.
func (db *DB) GetInterviewByID(ctx context.Context, id string) (*Interview, error) {
	query := interviewSelect + ` WHERE id = $1`

	iv, err := scanInterview(db.connection.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return iv, err
}

// GetInterviewsByUserID lists a user's interviews, newest first.
func (db *DB) GetInterviewsByUserID(ctx context.Context, userID string) ([]*Interview, error) {
	query := interviewSelect + ` WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := db.connection.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

// GetLatestInterviews lists finalized interviews from other users, newest
// first, capped at limit.
func (db *DB) GetLatestInterviews(ctx context.Context, excludeUserID string, limit int) ([]*Interview, error) {
	query := interviewSelect + `
              WHERE finalized = TRUE AND user_id <> $1
              ORDER BY created_at DESC
              LIMIT $2`

	rows, err := db.connection.QueryContext(ctx, query, excludeUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

const interviewSelect = `SELECT id, user_id, role, level, type, techstack, questions, finalized, created_at
              FROM interviews`

func scanInterview(row rowScanner) (*Interview, error) {
	iv := &Interview{}
	var techstack string
	var questions []byte

	err := row.Scan(&iv.ID, &iv.UserID, &iv.Role, &iv.Level, &iv.Type,
		&techstack, &questions, &iv.Finalized, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}

	if techstack != "" {
		iv.Techstack = splitAndTrim(techstack)
	}
	if err := unmarshalColumn(questions, &iv.Questions); err != nil {
		return nil, err
	}

	return iv, nil
}

func collectInterviews(rows *sql.Rows) ([]*Interview, error) {
	var res []*Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, iv)
	}
	return res, rows.Err()
}

// helper to split comma-separated techstack values
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}
