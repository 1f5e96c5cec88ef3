package plan

import (
	"context"
	"fmt"
	"time"

	enquiryRepo "partypilot/database/repository/enquiry"
	partyRepo "partypilot/database/repository/party"
	supplierRepo "partypilot/database/repository/supplier"
	"partypilot/events"
	"partypilot/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// JourneyService drives the party journey: slot assignment and the derived
// dashboard.
type JourneyService interface {
	CreateParty(ctx context.Context, party *models.PartyPlan) (*models.PartyPlan, error)
	GetParty(ctx context.Context, partyID string) (*models.PartyPlan, error)
	GetPartiesByCustomer(ctx context.Context, customerID string) ([]models.PartyPlan, error)
	AssignSlotSupplier(ctx context.Context, partyID, slotType, supplierID string) (*models.PartyPlan, error)
	ClearSlot(ctx context.Context, partyID, slotType string) (*models.PartyPlan, error)
	Dashboard(ctx context.Context, partyID string) (*models.JourneyDashboard, error)
}

// DefaultJourneyService is the production implementation.
type DefaultJourneyService struct {
	PartyRepo    partyRepo.PartyRepository
	EnquiryRepo  enquiryRepo.EnquiryRepository
	SupplierRepo supplierRepo.SupplierRepository
	Cache        *redis.Client
	Bus          events.Bus
	AsynqClient  *asynq.Client
	CacheTTL     time.Duration
}

func NewDefaultJourneyService(
	parties partyRepo.PartyRepository,
	enquiries enquiryRepo.EnquiryRepository,
	suppliers supplierRepo.SupplierRepository,
	cache *redis.Client,
	bus events.Bus,
	asynqClient *asynq.Client,
	cacheTTL time.Duration,
) (*DefaultJourneyService, error) {
	if parties == nil || enquiries == nil || suppliers == nil {
		return nil, fmt.Errorf("journey service initialization error: one or more dependencies are nil")
	}
	svc := &DefaultJourneyService{
		PartyRepo:    parties,
		EnquiryRepo:  enquiries,
		SupplierRepo: suppliers,
		Cache:        cache,
		Bus:          bus,
		AsynqClient:  asynqClient,
		CacheTTL:     cacheTTL,
	}
	if bus != nil {
		// Enquiry lifecycle changes make the cached dashboard stale.
		bus.Subscribe(events.TopicEnquiryStatusChanged, func(payload any) {
			if evt, ok := payload.(events.EnquiryStatusChanged); ok {
				svc.invalidateDashboard(context.Background(), evt.PartyID)
			}
		})
	}
	return svc, nil
}
