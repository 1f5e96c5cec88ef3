package enquiry

import (
	"context"
	"fmt"

	enquiryRepo "partypilot/database/repository/enquiry"
	partyRepo "partypilot/database/repository/party"
	supplierRepo "partypilot/database/repository/supplier"
	"partypilot/events"
	"partypilot/models"
	"partypilot/services/notification"

	"github.com/hibiken/asynq"
)

// EnquiryService drives the enquiry lifecycle: creation, supplier response
// and externally computed payment status updates.
type EnquiryService interface {
	CreateEnquiry(ctx context.Context, partyID, slotType, message string) (*models.Enquiry, error)
	RespondToEnquiry(ctx context.Context, enquiryID string, accept bool, response string) (*models.Enquiry, error)
	RecordPaymentStatus(ctx context.Context, enquiryID, paymentStatus string) (*models.Enquiry, error)
	GetByParty(ctx context.Context, partyID string) ([]models.Enquiry, error)
}

// DefaultEnquiryService is the production implementation.
type DefaultEnquiryService struct {
	Repo         enquiryRepo.EnquiryRepository
	PartyRepo    partyRepo.PartyRepository
	SupplierRepo supplierRepo.SupplierRepository
	Bus          events.Bus
	Notification notification.NotificationService
	AsynqClient  *asynq.Client
}

func NewDefaultEnquiryService(
	repo enquiryRepo.EnquiryRepository,
	parties partyRepo.PartyRepository,
	suppliers supplierRepo.SupplierRepository,
	bus events.Bus,
	notifSvc notification.NotificationService,
	asynqClient *asynq.Client,
) (*DefaultEnquiryService, error) {
	if repo == nil || parties == nil || suppliers == nil {
		return nil, fmt.Errorf("enquiry service initialization error: one or more dependencies are nil")
	}
	return &DefaultEnquiryService{
		Repo:         repo,
		PartyRepo:    parties,
		SupplierRepo: suppliers,
		Bus:          bus,
		Notification: notifSvc,
		AsynqClient:  asynqClient,
	}, nil
}
