package repository

import (
	"database/sql"
	"fmt"
	"time"

	"learnread/internal/database"
	"learnread/internal/models"
)

// LearnerRepository handles database operations for learner profiles
type LearnerRepository struct {
	db database.DBTX
}

// NewLearnerRepository creates a new learner repository
func NewLearnerRepository(db database.DBTX) *LearnerRepository {
	return &LearnerRepository{db: db}
}

// CreateLearner inserts a new learner profile
func (r *LearnerRepository) CreateLearner(id, name string, character models.Character) (*models.Learner, error) {
	query := "INSERT INTO learners (id, name, avatar) VALUES (?, ?, ?)"
	if _, err := r.db.Exec(query, id, name, string(character)); err != nil {
		return nil, fmt.Errorf("failed to create learner: %w", err)
	}

	now := time.Now()
	return &models.Learner{
		ID:        id,
		Name:      name,
		Character: character,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetLearnerByID retrieves a learner by ID; nil when not found
func (r *LearnerRepository) GetLearnerByID(id string) (*models.Learner, error) {
	query := "SELECT id, name, avatar, created_at, updated_at FROM learners WHERE id = ?"

	learner := &models.Learner{}
	var avatar string
	err := r.db.QueryRow(query, id).Scan(
		&learner.ID,
		&learner.Name,
		&avatar,
		&learner.CreatedAt,
		&learner.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get learner: %w", err)
	}

	learner.Character = models.Character(avatar)
	return learner, nil
}

// ListLearners retrieves all learner profiles in creation order
func (r *LearnerRepository) ListLearners() ([]models.Learner, error) {
	query := "SELECT id, name, avatar, created_at, updated_at FROM learners ORDER BY created_at"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list learners: %w", err)
	}
	defer rows.Close()

	var learners []models.Learner
	for rows.Next() {
		var l models.Learner
		var avatar string
		if err := rows.Scan(&l.ID, &l.Name, &avatar, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan learner: %w", err)
		}
		l.Character = models.Character(avatar)
		learners = append(learners, l)
	}

	return learners, rows.Err()
}

// UpdateLearner updates a learner's name and character
func (r *LearnerRepository) UpdateLearner(id, name string, character models.Character) error {
	query := "UPDATE learners SET name = ?, avatar = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, name, string(character), id); err != nil {
		return fmt.Errorf("failed to update learner: %w", err)
	}
	return nil
}

// DeleteLearner removes a learner and, via cascade, their progress document
func (r *LearnerRepository) DeleteLearner(id string) error {
	if _, err := r.db.Exec("DELETE FROM learners WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete learner: %w", err)
	}
	return nil
}
