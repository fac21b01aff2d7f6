package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

// CacheEntry is one cached vacation snapshot
type CacheEntry struct {
	Zone       models.Zone
	SchoolYear string
	Periods    []models.VacationPeriod
	FetchedAt  time.Time
}

// VacationCacheRepository stores fetched vacation periods per zone and school year
type VacationCacheRepository struct {
	db *sql.DB
}

// NewVacationCacheRepository creates a new vacation cache repository
func NewVacationCacheRepository(db *sql.DB) *VacationCacheRepository {
	return &VacationCacheRepository{db: db}
}

// Get returns the cached entry, or nil when nothing is cached
func (r *VacationCacheRepository) Get(zone models.Zone, schoolYear string) (*CacheEntry, error) {
	query := `SELECT payload, fetched_at FROM vacation_cache WHERE zone = ? AND school_year = ?`

	var payload string
	var fetchedAt int64
	err := r.db.QueryRow(query, string(zone), schoolYear).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	var periods []models.VacationPeriod
	if err := json.Unmarshal([]byte(payload), &periods); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return &CacheEntry{
		Zone:       zone,
		SchoolYear: schoolYear,
		Periods:    periods,
		FetchedAt:  time.Unix(fetchedAt, 0),
	}, nil
}

// Save replaces the cached snapshot of a zone and school year
func (r *VacationCacheRepository) Save(entry CacheEntry) error {
	if entry.Periods == nil {
		entry.Periods = []models.VacationPeriod{}
	}
	payload, err := json.Marshal(entry.Periods)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	query := `INSERT INTO vacation_cache (zone, school_year, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(zone, school_year) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`

	if _, err := r.db.Exec(query, string(entry.Zone), entry.SchoolYear, string(payload), entry.FetchedAt.Unix()); err != nil {
		return fmt.Errorf("failed to save cache entry: %w", err)
	}
	return nil
}

// Delete removes one cached snapshot
func (r *VacationCacheRepository) Delete(zone models.Zone, schoolYear string) error {
	if _, err := r.db.Exec(`DELETE FROM vacation_cache WHERE zone = ? AND school_year = ?`, string(zone), schoolYear); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached snapshot and returns how many were removed
func (r *VacationCacheRepository) Clear() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM vacation_cache`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	return result.RowsAffected()
}
