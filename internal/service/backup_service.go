package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"learnread/internal/database"
	"learnread/internal/models"
	"learnread/internal/repository"
)

// BackupData is the complete export: every learner profile with its
// progress document.
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Learners   []LearnerBackup `json:"learners"`
}

// LearnerBackup is one learner profile plus their raw progress
// document. The document is carried opaquely so a backup taken by an
// older build restores losslessly into a newer one.
type LearnerBackup struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Character string          `json:"character"`
	CreatedAt time.Time       `json:"created_at"`
	Document  json.RawMessage `json:"document,omitempty"`
}

const backupVersion = "1"

// BackupService exports and imports the learner database as JSON.
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes all learners and progress documents to a JSON file.
func (s *BackupService) Export(outputPath string) error {
	learnerRepo := repository.NewLearnerRepository(s.db)
	progressRepo := repository.NewProgressRepository(s.db)

	learners, err := learnerRepo.ListLearners()
	if err != nil {
		return fmt.Errorf("failed to list learners: %w", err)
	}

	docs, err := progressRepo.ListDocuments()
	if err != nil {
		return fmt.Errorf("failed to list progress documents: %w", err)
	}

	data := BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now(),
	}
	for _, l := range learners {
		data.Learners = append(data.Learners, LearnerBackup{
			ID:        l.ID,
			Name:      l.Name,
			Character: string(l.Character),
			CreatedAt: l.CreatedAt,
			Document:  docs[l.ID],
		})
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return nil
}

// Import restores learners and documents from a backup file inside a
// single transaction. With clear set, existing data is removed first.
func (s *BackupService) Import(inputPath string, clear bool) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var data BackupData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if clear {
		if _, err := tx.Exec("DELETE FROM progress_documents"); err != nil {
			return fmt.Errorf("failed to clear progress documents: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM learners"); err != nil {
			return fmt.Errorf("failed to clear learners: %w", err)
		}
	}

	learnerRepo := repository.NewLearnerRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)

	for _, l := range data.Learners {
		if _, err := learnerRepo.CreateLearner(l.ID, l.Name, models.Character(l.Character)); err != nil {
			return fmt.Errorf("failed to restore learner %s: %w", l.ID, err)
		}
		if len(l.Document) > 0 {
			if err := progressRepo.PutDocument(l.ID, l.Document); err != nil {
				return fmt.Errorf("failed to restore document for %s: %w", l.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	return nil
}
