package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/academy"
	"github.com/jengzang/vacances-backend-go/internal/metrics"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/repository"
	"github.com/jengzang/vacances-backend-go/internal/spatial"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

var (
	// ErrUnknownAcademy means an academy id is not in the reference table
	ErrUnknownAcademy = errors.New("unknown academy")
	// ErrInvalidCoordinates means lat/lng are missing a half or out of range
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrInvalidZone means a zone label is not A, B or C
	ErrInvalidZone = errors.New("invalid zone")
)

// ZoneChoice is the outcome of zone resolution
type ZoneChoice struct {
	Academy *models.Academy
	Zone    models.Zone
	Source  models.ZoneSource
}

// StatusService wires zone resolution, vacation data and the status resolver
type StatusService struct {
	vacations   *VacationService
	selections  *repository.SelectionRepository
	resolver    *vacation.Resolver
	defaultZone models.Zone
	metrics     *metrics.Collector
	now         func() time.Time
}

// NewStatusService creates a new status service. selections may be nil.
func NewStatusService(vacations *VacationService, selections *repository.SelectionRepository, resolver *vacation.Resolver, defaultZone models.Zone, m *metrics.Collector) *StatusService {
	return &StatusService{
		vacations:   vacations,
		selections:  selections,
		resolver:    resolver,
		defaultZone: defaultZone,
		metrics:     m,
		now:         time.Now,
	}
}

// ResolveZone picks the zone for a query: explicit academy, then the
// stored selection, then coordinates, then the default zone.
func (s *StatusService) ResolveZone(q models.StatusQuery) (*ZoneChoice, error) {
	if q.Academy != "" {
		a, ok := academy.ByID(q.Academy)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAcademy, q.Academy)
		}
		return &ZoneChoice{Academy: &a, Zone: a.Zone, Source: models.SourceSelection}, nil
	}

	if s.selections != nil {
		sel, err := s.selections.Get()
		if err != nil {
			return nil, err
		}
		if sel != nil {
			if a, ok := academy.ByID(sel.AcademyID); ok {
				return &ZoneChoice{Academy: &a, Zone: a.Zone, Source: models.SourceSelection}, nil
			}
			log.Printf("Warning: ignoring stored selection of unknown academy %q", sel.AcademyID)
		}
	}

	if q.Latitude != nil || q.Longitude != nil {
		if !q.HasCoordinates() || !spatial.ValidCoordinates(*q.Latitude, *q.Longitude) {
			return nil, ErrInvalidCoordinates
		}
		nearest, err := academy.Nearest(*q.Latitude, *q.Longitude)
		if err != nil {
			return nil, err
		}
		a := nearest.Academy
		if q.Remember && s.selections != nil {
			if err := s.selections.Set(a.ID); err != nil {
				log.Printf("Warning: failed to remember academy %s: %v", a.ID, err)
			}
		}
		return &ZoneChoice{Academy: &a, Zone: a.Zone, Source: models.SourceGeolocation}, nil
	}

	return &ZoneChoice{Zone: s.defaultZone, Source: models.SourceDefault}, nil
}

// Status resolves the zone, loads the vacation snapshot and computes the
// current status and the time remaining until its next event.
func (s *StatusService) Status(ctx context.Context, q models.StatusQuery) (*models.StatusSnapshot, error) {
	choice, err := s.ResolveZone(q)
	if err != nil {
		return nil, err
	}

	now := s.now()
	periods, err := s.vacations.Snapshot(ctx, choice.Zone, now)
	if err != nil {
		s.metrics.ObserveResolution("error")
		return nil, err
	}

	status, err := s.resolver.Status(now, periods)
	if err != nil {
		if errors.Is(err, vacation.ErrNoVacationData) {
			s.metrics.ObserveResolution("no_data")
		} else {
			s.metrics.ObserveResolution("error")
		}
		return nil, err
	}
	s.metrics.ObserveResolution(string(status.Status))

	name := vacation.FormatVacationName(status.NextVacation)
	if status.CurrentVacation != nil {
		name = vacation.FormatVacationName(*status.CurrentVacation)
	}

	return &models.StatusSnapshot{
		Academy:   choice.Academy,
		Zone:      choice.Zone,
		Source:    choice.Source,
		Status:    status,
		Remaining: vacation.Remaining(status.NextEvent, now),
		Name:      name,
		At:        now,
	}, nil
}

// Now returns the service clock
func (s *StatusService) Now() time.Time {
	return s.now()
}
