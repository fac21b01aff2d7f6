package service

import (
	"fmt"

	"github.com/jengzang/vacances-backend-go/internal/academy"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/repository"
)

// SelectionService handles the persisted academy selection
type SelectionService struct {
	repo *repository.SelectionRepository
}

// NewSelectionService creates a new selection service
func NewSelectionService(repo *repository.SelectionRepository) *SelectionService {
	return &SelectionService{repo: repo}
}

// Get returns the selected academy, or nil when none is stored
func (s *SelectionService) Get() (*models.Academy, error) {
	sel, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, nil
	}
	a, ok := academy.ByID(sel.AcademyID)
	if !ok {
		return nil, fmt.Errorf("%w: stored selection %q", ErrUnknownAcademy, sel.AcademyID)
	}
	return &a, nil
}

// Set stores a known academy as the selection
func (s *SelectionService) Set(academyID string) (*models.Academy, error) {
	a, ok := academy.ByID(academyID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAcademy, academyID)
	}
	if err := s.repo.Set(a.ID); err != nil {
		return nil, err
	}
	return &a, nil
}

// Clear removes the selection
func (s *SelectionService) Clear() error {
	return s.repo.Clear()
}
