// Package store persists extracted questions and batch run records in a
// local SQLite database. The database is the source of truth for extracted
// questions, keyed to the PDF filename they came from.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/clatprep/mcq-extract/internal/extractor"
)

// Store wraps the questions database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the questions database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			question_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT,
			pdf_filename    TEXT NOT NULL,
			question_number INTEGER,
			question_text   TEXT NOT NULL,
			choices         TEXT NOT NULL,
			correct_index   INTEGER NOT NULL,
			category        TEXT,
			created_at      TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			run_id      TEXT PRIMARY KEY,
			source_dir  TEXT,
			started_at  TEXT NOT NULL,
			finished_at TEXT,
			documents   INTEGER DEFAULT 0,
			questions   INTEGER DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_pdf ON questions(pdf_filename)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize tables: %w", err)
		}
	}
	return nil
}

// StartRun records a new batch run over sourceDir and returns its ID.
func (s *Store) StartRun(sourceDir string) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, source_dir, started_at) VALUES (?, ?, ?)`,
		runID, sourceDir, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}
	return runID, nil
}

// FinishRun closes out a batch run with its final counters.
func (s *Store) FinishRun(runID string, documents, questions int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, documents = ?, questions = ? WHERE run_id = ?`,
		time.Now().Format(time.RFC3339), documents, questions, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", runID, err)
	}
	return nil
}

// SaveQuestions inserts the records extracted from one source document,
// all-or-nothing.
func (s *Store) SaveQuestions(runID, pdfFilename string, records []extractor.QuestionRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO questions
		(run_id, pdf_filename, question_number, question_text, choices, correct_index, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for _, record := range records {
		choices, err := json.Marshal(record.Choices)
		if err != nil {
			return fmt.Errorf("failed to encode choices: %w", err)
		}
		if _, err := stmt.Exec(
			runID, pdfFilename, record.QuestionNumber, record.QuestionText,
			string(choices), record.CorrectIndex, record.Category, now,
		); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	return tx.Commit()
}

// QuestionsByFilename returns the stored records for one source document in
// insertion order.
func (s *Store) QuestionsByFilename(pdfFilename string) ([]extractor.QuestionRecord, error) {
	rows, err := s.db.Query(`SELECT question_number, question_text, choices, correct_index, category
		FROM questions WHERE pdf_filename = ? ORDER BY question_id`, pdfFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var records []extractor.QuestionRecord
	for rows.Next() {
		var record extractor.QuestionRecord
		var choices string
		if err := rows.Scan(&record.QuestionNumber, &record.QuestionText,
			&choices, &record.CorrectIndex, &record.Category); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(choices), &record.Choices); err != nil {
			return nil, fmt.Errorf("failed to decode choices: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// CountByCategory returns the number of stored questions per category.
func (s *Store) CountByCategory() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT category, COUNT(*) FROM questions GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}
