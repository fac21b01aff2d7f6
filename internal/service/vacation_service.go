package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/vacances-backend-go/internal/metrics"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/repository"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

// NextYearRetry is how long a failed fetch of the next school year is
// remembered before Snapshot asks the API again
const NextYearRetry = 10 * time.Minute

// Fetcher supplies the vacation periods of one zone and school year
type Fetcher interface {
	Fetch(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, error)
}

// VacationService handles vacation data: cache first, then the open-data API
type VacationService struct {
	fetcher Fetcher
	cache   *repository.VacationCacheRepository
	ttl     time.Duration
	loc     *time.Location
	metrics *metrics.Collector
	now     func() time.Time

	mu     sync.Mutex
	misses map[string]time.Time // zone/year -> last failed next-year fetch
}

// NewVacationService creates a new vacation service. cache may be nil.
func NewVacationService(fetcher Fetcher, cache *repository.VacationCacheRepository, ttl time.Duration, loc *time.Location, m *metrics.Collector) *VacationService {
	if loc == nil {
		loc = time.Local
	}
	return &VacationService{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		loc:     loc,
		metrics: m,
		now:     time.Now,
		misses:  make(map[string]time.Time),
	}
}

// GetVacations returns the periods of one zone and school year
func (s *VacationService) GetVacations(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, error) {
	if periods, ok := s.fromCache(zone, schoolYear); ok {
		return periods, nil
	}
	return s.fetchAndStore(ctx, zone, schoolYear)
}

func (s *VacationService) fromCache(zone models.Zone, schoolYear string) ([]models.VacationPeriod, bool) {
	if s.cache == nil {
		return nil, false
	}

	entry, err := s.cache.Get(zone, schoolYear)
	if err != nil {
		log.Printf("Warning: vacation cache read failed zone=%s year=%s: %v", zone, schoolYear, err)
		s.metrics.ObserveCache("miss")
		return nil, false
	}
	if entry == nil {
		s.metrics.ObserveCache("miss")
		return nil, false
	}
	if s.now().Sub(entry.FetchedAt) >= s.ttl {
		s.metrics.ObserveCache("expired")
		if err := s.cache.Delete(zone, schoolYear); err != nil {
			log.Printf("Warning: failed to remove expired cache entry: %v", err)
		}
		return nil, false
	}

	s.metrics.ObserveCache("hit")
	return entry.Periods, true
}

func (s *VacationService) fetchAndStore(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, error) {
	periods, err := s.fetcher.Fetch(ctx, zone, schoolYear)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		entry := repository.CacheEntry{Zone: zone, SchoolYear: schoolYear, Periods: periods, FetchedAt: s.now()}
		if err := s.cache.Save(entry); err != nil {
			log.Printf("Warning: failed to cache vacations zone=%s year=%s: %v", zone, schoolYear, err)
		}
	}
	return periods, nil
}

// Snapshot returns the periods of the school year containing now followed
// by those of the next school year, without duplicates. The next year is
// optional: its absence or failure only shortens the snapshot.
func (s *VacationService) Snapshot(ctx context.Context, zone models.Zone, now time.Time) ([]models.VacationPeriod, error) {
	current := vacation.SchoolYear(now.In(s.loc))
	periods, err := s.GetVacations(ctx, zone, current)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacations for %s: %w", current, err)
	}

	next := nextSchoolYear(now.In(s.loc))
	upcoming, err := s.upcoming(ctx, zone, next)
	if err != nil {
		log.Printf("Warning: vacations for %s unavailable, continuing with %s only: %v", next, current, err)
	}

	merged := dedupe(append(append([]models.VacationPeriod{}, periods...), upcoming...))
	for _, pair := range vacation.FindOverlaps(merged, s.loc) {
		log.Printf("Warning: overlapping vacation periods in zone %s: %q and %q",
			zone, vacation.FormatVacationName(merged[pair[0]]), vacation.FormatVacationName(merged[pair[1]]))
	}
	return merged, nil
}

// upcoming loads the next school year. After a failure the API is not
// asked again for NextYearRetry; the cache is still consulted.
func (s *VacationService) upcoming(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, error) {
	if periods, ok := s.fromCache(zone, schoolYear); ok {
		return periods, nil
	}

	key := string(zone) + "/" + schoolYear
	s.mu.Lock()
	failedAt, failed := s.misses[key]
	s.mu.Unlock()
	if failed && s.now().Sub(failedAt) < NextYearRetry {
		return nil, nil
	}

	periods, err := s.fetchAndStore(ctx, zone, schoolYear)
	s.mu.Lock()
	if err != nil {
		s.misses[key] = s.now()
	} else {
		delete(s.misses, key)
	}
	s.mu.Unlock()
	return periods, err
}

// FetchAllZones returns the periods of every zone for one school year
func (s *VacationService) FetchAllZones(ctx context.Context, schoolYear string) (map[models.Zone][]models.VacationPeriod, error) {
	results := make([][]models.VacationPeriod, len(models.Zones))

	g, gctx := errgroup.WithContext(ctx)
	for i, zone := range models.Zones {
		i, zone := i, zone
		g.Go(func() error {
			periods, err := s.GetVacations(gctx, zone, schoolYear)
			if err != nil {
				return fmt.Errorf("zone %s: %w", zone, err)
			}
			results[i] = periods
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[models.Zone][]models.VacationPeriod, len(models.Zones))
	for i, zone := range models.Zones {
		out[zone] = results[i]
	}
	return out, nil
}

// Refresh refetches the current and next school year of every zone,
// bypassing the cache. It returns the first error but refreshes the rest.
func (s *VacationService) Refresh(ctx context.Context) error {
	now := s.now().In(s.loc)
	years := []string{vacation.SchoolYear(now), nextSchoolYear(now)}

	var firstErr error
	refreshed := 0
	for _, zone := range models.Zones {
		for _, year := range years {
			if _, err := s.fetchAndStore(ctx, zone, year); err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("refresh zone %s %s: %w", zone, year, err)
				}
				continue
			}
			refreshed++
		}
	}

	log.Printf("Vacation cache refreshed: %d/%d snapshots", refreshed, len(models.Zones)*len(years))
	return firstErr
}

// ClearCache removes every cached snapshot
func (s *VacationService) ClearCache() (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.Clear()
}

// SchoolYearOf returns the school year starting in September of year,
// or the one containing now when year is zero
func (s *VacationService) SchoolYearOf(year int) string {
	if year <= 0 {
		return vacation.SchoolYear(s.now().In(s.loc))
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

func nextSchoolYear(t time.Time) string {
	return vacation.SchoolYear(t.AddDate(1, 0, 0))
}

// dedupe drops repeated (description, start, end) records, keeping the first
func dedupe(periods []models.VacationPeriod) []models.VacationPeriod {
	type key struct{ desc, start, end string }
	seen := make(map[key]bool, len(periods))
	out := periods[:0]
	for _, p := range periods {
		k := key{p.Description, p.StartDate, p.EndDate}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
