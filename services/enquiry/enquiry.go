package enquiry

import (
	"context"
	"fmt"
	"time"

	"partypilot/events"
	"partypilot/models"
	"partypilot/services/tasks"
	"partypilot/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// followUpDelay is how long an enquiry may sit pending before the supplier
// gets a reminder push.
const followUpDelay = 48 * time.Hour

// CreateEnquiry sends a booking request to the supplier currently held in a
// party slot. Suppliers configured to auto-accept are accepted immediately
// with the marker response; everyone else starts pending and gets a
// follow-up reminder scheduled.
func (s *DefaultEnquiryService) CreateEnquiry(ctx context.Context, partyID, slotType, message string) (*models.Enquiry, error) {
	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}
	slot := party.Slot(slotType)
	if slot == nil || slot.Supplier == nil {
		return nil, fmt.Errorf("party %s has no supplier selected for slot %s", partyID, slotType)
	}

	existing, err := s.Repo.GetByPartyAndCategory(partyID, slotType)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing enquiries: %w", err)
	}
	if existing != nil && existing.Status != models.EnquiryStatusDeclined {
		return nil, fmt.Errorf("an enquiry for slot %s already exists with status %s", slotType, existing.Status)
	}

	supplier, err := s.SupplierRepo.GetByID(slot.Supplier.ID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	now := time.Now()
	enq := &models.Enquiry{
		ID:               uuid.NewString(),
		PartyID:          partyID,
		SupplierID:       supplier.ID,
		SupplierCategory: slotType,
		Status:           models.EnquiryStatusPending,
		PaymentStatus:    models.PaymentStatusUnpaid,
		Message:          message,
		QuotedPrice:      slot.Supplier.TotalPrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if supplier.AutoAccept {
		enq.Status = models.EnquiryStatusAccepted
		enq.AutoAccepted = true
		enq.SupplierResponse = models.AutoResponseMarker + "accepted: this supplier confirms bookings instantly"
		enq.SupplierResponseDate = &now
	}

	if err := s.Repo.Create(enq); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	s.publishStatusChange(enq)

	if enq.AutoAccepted {
		s.notifyCustomer(ctx, enq, "Booking accepted",
			fmt.Sprintf("%s has accepted your %s enquiry", supplier.Name, slotType))
	} else {
		s.notifySupplier(ctx, enq, "New enquiry",
			fmt.Sprintf("You have a new %s enquiry for %s's party", slotType, party.ChildName))
		s.scheduleFollowUp(enq, supplier.ID)
	}

	return enq, nil
}

// RespondToEnquiry records a supplier's manual accept or decline.
func (s *DefaultEnquiryService) RespondToEnquiry(ctx context.Context, enquiryID string, accept bool, response string) (*models.Enquiry, error) {
	enq, err := s.Repo.GetByID(enquiryID)
	if err != nil {
		return nil, fmt.Errorf("enquiry not found: %w", err)
	}
	if enq.Status != models.EnquiryStatusPending {
		return nil, fmt.Errorf("enquiry %s has already been responded to (status %s)", enquiryID, enq.Status)
	}

	status := models.EnquiryStatusAccepted
	if !accept {
		status = models.EnquiryStatusDeclined
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(enquiryID, bson.M{
		"status":                 status,
		"supplier_response":      response,
		"supplier_response_date": now,
		"auto_accepted":          false,
		"updated_at":             now,
	}); err != nil {
		return nil, fmt.Errorf("failed to update enquiry %s: %w", enquiryID, err)
	}

	enq.Status = status
	enq.SupplierResponse = response
	enq.SupplierResponseDate = &now
	enq.AutoAccepted = false
	enq.UpdatedAt = now

	s.publishStatusChange(enq)

	title, body := "Enquiry declined", fmt.Sprintf("Your %s enquiry was declined", enq.SupplierCategory)
	if accept {
		title, body = "Enquiry accepted", fmt.Sprintf("Your %s enquiry was accepted", enq.SupplierCategory)
	}
	s.notifyCustomer(ctx, enq, title, body)

	return enq, nil
}

// RecordPaymentStatus stores a payment status computed by the external
// payment provider. No payment logic lives here; the value is recorded and
// displayed as received.
func (s *DefaultEnquiryService) RecordPaymentStatus(ctx context.Context, enquiryID, paymentStatus string) (*models.Enquiry, error) {
	if paymentStatus != models.PaymentStatusPaid && paymentStatus != models.PaymentStatusUnpaid {
		return nil, fmt.Errorf("unknown payment status %q", paymentStatus)
	}

	enq, err := s.Repo.GetByID(enquiryID)
	if err != nil {
		return nil, fmt.Errorf("enquiry not found: %w", err)
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(enquiryID, bson.M{
		"payment_status": paymentStatus,
		"updated_at":     now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record payment status for enquiry %s: %w", enquiryID, err)
	}

	enq.PaymentStatus = paymentStatus
	enq.UpdatedAt = now

	s.publishStatusChange(enq)

	if paymentStatus == models.PaymentStatusPaid {
		s.notifySupplier(ctx, enq, "Deposit received",
			fmt.Sprintf("The deposit for a %s booking has been paid", enq.SupplierCategory))
	}

	return enq, nil
}

func (s *DefaultEnquiryService) GetByParty(ctx context.Context, partyID string) ([]models.Enquiry, error) {
	return s.Repo.GetByParty(partyID)
}

func (s *DefaultEnquiryService) publishStatusChange(enq *models.Enquiry) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.TopicEnquiryStatusChanged, events.EnquiryStatusChanged{
		PartyID:          enq.PartyID,
		EnquiryID:        enq.ID,
		SupplierCategory: enq.SupplierCategory,
		Status:           enq.Status,
		PaymentStatus:    enq.PaymentStatus,
	})
}

// Notification failures never fail the enquiry operation; they are logged
// and dropped.
func (s *DefaultEnquiryService) notifyCustomer(ctx context.Context, enq *models.Enquiry, title, body string) {
	if s.Notification == nil {
		return
	}
	data := map[string]string{"enquiryId": enq.ID, "slotType": enq.SupplierCategory}
	if err := s.Notification.SendCustomerPushNotification(ctx, enq.PartyID, title, body, data); err != nil {
		utils.GetLogger().Warn("Failed to notify customer", zap.String("enquiryId", enq.ID), zap.Error(err))
	}
}

func (s *DefaultEnquiryService) notifySupplier(ctx context.Context, enq *models.Enquiry, title, body string) {
	if s.Notification == nil {
		return
	}
	data := map[string]string{"enquiryId": enq.ID, "slotType": enq.SupplierCategory}
	if err := s.Notification.SendSupplierPushNotification(ctx, enq.SupplierID, title, body, data); err != nil {
		utils.GetLogger().Warn("Failed to notify supplier", zap.String("enquiryId", enq.ID), zap.Error(err))
	}
}

func (s *DefaultEnquiryService) scheduleFollowUp(enq *models.Enquiry, supplierID string) {
	if s.AsynqClient == nil {
		return
	}
	fireAt := time.Now().Add(followUpDelay)
	payload := models.ReminderPayload{
		ID:         supplierID,
		ReminderID: enq.ID,
		Title:      "Enquiry waiting",
		Body:       fmt.Sprintf("A %s enquiry is still waiting for your response", enq.SupplierCategory),
		FireDate:   fireAt.Format(time.RFC3339),
		Target:     "supplier",
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("Failed to build follow-up reminder task",
			zap.String("enquiryId", enq.ID), zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("Failed to enqueue follow-up reminder task",
			zap.String("enquiryId", enq.ID), zap.Error(err))
	}
}
