package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

const selectedAcademyKey = "selected_academy"

// SelectionRepository persists the manually selected academy
type SelectionRepository struct {
	db *sql.DB
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(db *sql.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// Get returns the stored selection, or nil when none is stored
func (r *SelectionRepository) Get() (*models.Selection, error) {
	var s models.Selection
	err := r.db.QueryRow(`SELECT value, updated_at FROM settings WHERE key = ?`, selectedAcademyKey).
		Scan(&s.AcademyID, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}
	return &s, nil
}

// Set stores the selected academy id
func (r *SelectionRepository) Set(academyID string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, selectedAcademyKey, academyID); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// Clear removes the stored selection
func (r *SelectionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM settings WHERE key = ?`, selectedAcademyKey); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}
