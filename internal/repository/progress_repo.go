package repository

import (
	"database/sql"
	"fmt"

	"learnread/internal/database"
)

// ProgressRepository stores each learner's progress as a single JSON
// document keyed by learner ID. The document shape is owned by the
// models package; this layer never inspects it.
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetDocument returns the stored document for a learner, or nil when
// none has been saved yet.
func (r *ProgressRepository) GetDocument(learnerID string) ([]byte, error) {
	var doc []byte
	query := "SELECT document FROM progress_documents WHERE learner_id = ?"
	err := r.db.QueryRow(query, learnerID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress document: %w", err)
	}
	return doc, nil
}

// PutDocument inserts or replaces the learner's document.
func (r *ProgressRepository) PutDocument(learnerID string, doc []byte) error {
	query := r.db.GetDialect().UpsertDocumentQuery()
	if _, err := r.db.Exec(query, learnerID, string(doc), string(doc)); err != nil {
		return fmt.Errorf("failed to write progress document: %w", err)
	}
	return nil
}

// DeleteDocument removes the learner's document. Deleting a missing
// document is not an error.
func (r *ProgressRepository) DeleteDocument(learnerID string) error {
	if _, err := r.db.Exec("DELETE FROM progress_documents WHERE learner_id = ?", learnerID); err != nil {
		return fmt.Errorf("failed to delete progress document: %w", err)
	}
	return nil
}

// ListDocuments returns every stored document keyed by learner ID,
// used by backup export.
func (r *ProgressRepository) ListDocuments() (map[string][]byte, error) {
	rows, err := r.db.Query("SELECT learner_id, document FROM progress_documents")
	if err != nil {
		return nil, fmt.Errorf("failed to list progress documents: %w", err)
	}
	defer rows.Close()

	docs := make(map[string][]byte)
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan progress document: %w", err)
		}
		docs[id] = doc
	}

	return docs, rows.Err()
}
