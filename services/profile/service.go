package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	supplierRepo "partypilot/database/repository/supplier"
	"partypilot/events"
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileService manages supplier profile editing sessions: one section
// tracker per supplier, backed by the supplier repository.
type ProfileService interface {
	CheckChanges(ctx context.Context, supplierID, section string, details models.ServiceDetails) (SectionState, error)
	SaveSection(ctx context.Context, supplierID, section string, details models.ServiceDetails) (SectionState, error)
	SectionStates(ctx context.Context, supplierID string) (map[string]SectionState, error)
	RefreshSession(ctx context.Context, supplierID string) error
	CloseSession(supplierID string)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo supplierRepo.SupplierRepository
	Bus  events.Bus

	mu       sync.Mutex
	sessions map[string]*sessionTracker
}

type sessionTracker = Tracker[models.ServiceDetails]

func NewDefaultProfileService(repo supplierRepo.SupplierRepository, bus events.Bus) (*DefaultProfileService, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile service initialization error: supplier repository is nil")
	}
	return &DefaultProfileService{
		Repo:     repo,
		Bus:      bus,
		sessions: make(map[string]*sessionTracker),
	}, nil
}

// session returns the tracker for a supplier, creating it from the
// supplier's persisted service details on first use.
func (s *DefaultProfileService) session(ctx context.Context, supplierID string) (*sessionTracker, error) {
	s.mu.Lock()
	tracker, ok := s.sessions[supplierID]
	s.mu.Unlock()
	if ok {
		return tracker, nil
	}

	// The session only needs the service details, so skip the rest of the
	// supplier document.
	supplier, err := s.Repo.GetByIDWithProjection(supplierID, bson.M{"serviceDetails": 1})
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	tracker = NewTracker(ServiceDetailsExtractors(), s.persistFunc(supplierID))
	tracker.InitializeSections(supplier.ServiceDetails)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have raced us here; keep the first tracker so
	// baselines stay stable for the session.
	if existing, ok := s.sessions[supplierID]; ok {
		return existing, nil
	}
	s.sessions[supplierID] = tracker
	return tracker, nil
}

// persistFunc builds the injected persistence call for one supplier. Repo
// errors surface as logical failures so the tracker captures them into the
// section state instead of propagating.
func (s *DefaultProfileService) persistFunc(supplierID string) PersistFunc {
	return func(ctx context.Context, payload any) (*PersistResult, error) {
		doc, ok := payload.(bson.M)
		if !ok {
			return nil, fmt.Errorf("unexpected section payload type %T", payload)
		}
		if err := s.Repo.UpdateSetDocument(supplierID, doc); err != nil {
			return &PersistResult{Success: false, Error: err.Error()}, nil
		}
		return &PersistResult{Success: true}, nil
	}
}

// CheckChanges recomputes the dirty flag for one section against the
// caller's current form values.
func (s *DefaultProfileService) CheckChanges(ctx context.Context, supplierID, section string, details models.ServiceDetails) (SectionState, error) {
	extract, ok := ServiceDetailsExtractors()[section]
	if !ok {
		return SectionState{}, fmt.Errorf("unknown profile section %q", section)
	}
	tracker, err := s.session(ctx, supplierID)
	if err != nil {
		return SectionState{}, err
	}
	tracker.CheckChanges(section, extract(details))
	state, _ := tracker.State(section)
	return state, nil
}

// SaveSection persists one section of the supplier's service details and
// settles the section state. Save failures are reported in the returned
// state, not as an error.
func (s *DefaultProfileService) SaveSection(ctx context.Context, supplierID, section string, details models.ServiceDetails) (SectionState, error) {
	extract, ok := ServiceDetailsExtractors()[section]
	if !ok {
		return SectionState{}, fmt.Errorf("unknown profile section %q", section)
	}
	tracker, err := s.session(ctx, supplierID)
	if err != nil {
		return SectionState{}, err
	}

	current := extract(details)
	payload := bson.M{
		"serviceDetails." + section: current,
		"updatedAt":                 time.Now(),
	}
	state := tracker.SaveSection(ctx, section, current, payload)

	if state.Error == "" && s.Bus != nil {
		s.Bus.Publish(events.TopicSectionSaved, events.SectionSaved{
			SupplierID: supplierID,
			Section:    section,
		})
	}
	return state, nil
}

// SectionStates returns the current state of every section in the session.
func (s *DefaultProfileService) SectionStates(ctx context.Context, supplierID string) (map[string]SectionState, error) {
	tracker, err := s.session(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return tracker.States(), nil
}

// RefreshSession re-reads the supplier and fills in baselines for sections
// that are not initialized yet. Existing baselines are preserved.
func (s *DefaultProfileService) RefreshSession(ctx context.Context, supplierID string) error {
	tracker, err := s.session(ctx, supplierID)
	if err != nil {
		return err
	}
	supplier, err := s.Repo.GetByIDWithProjection(supplierID, bson.M{"serviceDetails": 1})
	if err != nil {
		return fmt.Errorf("supplier not found: %w", err)
	}
	tracker.InitializeSections(supplier.ServiceDetails)
	return nil
}

// CloseSession drops a supplier's editing session. The next reference
// rebuilds baselines from persisted data.
func (s *DefaultProfileService) CloseSession(supplierID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, supplierID)
}
