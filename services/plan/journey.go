package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"partypilot/events"
	"partypilot/metrics"
	"partypilot/models"
	"partypilot/services/tasks"
	"partypilot/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateParty persists a new party plan. Missing slots are filled with the
// default category set so the dashboard always renders the full journey.
func (s *DefaultJourneyService) CreateParty(ctx context.Context, party *models.PartyPlan) (*models.PartyPlan, error) {
	if party.ID == "" {
		party.ID = uuid.NewString()
	}
	if len(party.Slots) == 0 {
		slots := make([]models.SupplierSlot, 0, len(models.DefaultSlotCategories))
		for _, category := range models.DefaultSlotCategories {
			slots = append(slots, models.SupplierSlot{Type: category})
		}
		party.Slots = slots
	}
	now := time.Now()
	party.CreatedAt = now
	party.UpdatedAt = now

	if err := s.PartyRepo.Create(party); err != nil {
		return nil, fmt.Errorf("failed to create party plan: %w", err)
	}

	s.schedulePartyReminder(party)
	return party, nil
}

// schedulePartyReminder queues a push for the customer the day before the
// party. Scheduling failures are logged, not propagated; the party exists
// either way.
func (s *DefaultJourneyService) schedulePartyReminder(party *models.PartyPlan) {
	if s.AsynqClient == nil {
		return
	}
	fireAt := party.Date.AddDate(0, 0, -1)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		ID:         party.ID,
		ReminderID: party.ID,
		Title:      "Party tomorrow!",
		Body:       fmt.Sprintf("%s's party is tomorrow. Time to check your final headcount.", party.ChildName),
		FireDate:   fireAt.Format(time.RFC3339),
		Target:     "customer",
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("Failed to build party reminder task",
			zap.String("partyId", party.ID), zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("Failed to enqueue party reminder task",
			zap.String("partyId", party.ID), zap.Error(err))
	}
}

func (s *DefaultJourneyService) GetParty(ctx context.Context, partyID string) (*models.PartyPlan, error) {
	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}
	return party, nil
}

func (s *DefaultJourneyService) GetPartiesByCustomer(ctx context.Context, customerID string) ([]models.PartyPlan, error) {
	return s.PartyRepo.GetByCustomer(customerID)
}

// AssignSlotSupplier puts a supplier into a slot. The slot is created when
// the plan does not carry the category yet, since the category set is
// extensible.
func (s *DefaultJourneyService) AssignSlotSupplier(ctx context.Context, partyID, slotType, supplierID string) (*models.PartyPlan, error) {
	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}
	supplier, err := s.SupplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	slot := party.Slot(slotType)
	if slot == nil {
		party.Slots = append(party.Slots, models.SupplierSlot{Type: slotType})
		slot = &party.Slots[len(party.Slots)-1]
	}
	slot.Supplier = supplier
	party.UpdatedAt = time.Now()

	if err := s.PartyRepo.UpdateSetDocument(party.ID, bson.M{
		"slots":     party.Slots,
		"updatedAt": party.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to assign supplier to slot %s: %w", slotType, err)
	}

	s.publishSlotChanged(ctx, party.ID, slotType)
	return party, nil
}

// ClearSlot removes the chosen supplier from a slot, returning it to the
// empty state.
func (s *DefaultJourneyService) ClearSlot(ctx context.Context, partyID, slotType string) (*models.PartyPlan, error) {
	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}
	slot := party.Slot(slotType)
	if slot == nil {
		return nil, fmt.Errorf("party %s has no slot of type %s", partyID, slotType)
	}
	slot.Supplier = nil
	party.UpdatedAt = time.Now()

	if err := s.PartyRepo.UpdateSetDocument(party.ID, bson.M{
		"slots":     party.Slots,
		"updatedAt": party.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to clear slot %s: %w", slotType, err)
	}

	s.publishSlotChanged(ctx, party.ID, slotType)
	return party, nil
}

// Dashboard renders the journey for a party: every slot with its resolved
// display state. The rendered dashboard is cached in Redis until a slot or
// enquiry changes.
func (s *DefaultJourneyService) Dashboard(ctx context.Context, partyID string) (*models.JourneyDashboard, error) {
	if cached := s.cachedDashboard(ctx, partyID); cached != nil {
		return cached, nil
	}

	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}
	enquiries, err := s.EnquiryRepo.GetByParty(partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enquiries for party %s: %w", partyID, err)
	}

	dashboard := BuildDashboard(party, enquiries)
	s.storeDashboard(ctx, dashboard)
	return dashboard, nil
}

// BuildDashboard assembles the journey rows for a party plan. Exposed as a
// pure function so it can be exercised without storage.
func BuildDashboard(party *models.PartyPlan, enquiries []models.Enquiry) *models.JourneyDashboard {
	slots := make([]models.JourneySlot, 0, len(party.Slots))
	for _, slot := range party.Slots {
		row := models.JourneySlot{
			Type:     slot.Type,
			State:    ResolveSlotState(slot, enquiries),
			Supplier: slot.Supplier,
		}
		if slot.Supplier != nil {
			row.Enquiry = LatestForCategory(enquiries, slot.Type)
		}
		slots = append(slots, row)
	}
	return &models.JourneyDashboard{
		PartyID:     party.ID,
		Slots:       slots,
		GeneratedAt: time.Now(),
	}
}

func (s *DefaultJourneyService) publishSlotChanged(ctx context.Context, partyID, slotType string) {
	s.invalidateDashboard(ctx, partyID)
	if s.Bus != nil {
		s.Bus.Publish(events.TopicPartySlotChanged, events.PartySlotChanged{
			PartyID:  partyID,
			SlotType: slotType,
		})
	}
}

func (s *DefaultJourneyService) cachedDashboard(ctx context.Context, partyID string) *models.JourneyDashboard {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, utils.JourneyCachePrefix+partyID).Result()
	if err != nil {
		metrics.RecordJourneyCacheLookup("miss")
		return nil
	}
	var dashboard models.JourneyDashboard
	if err := json.Unmarshal([]byte(data), &dashboard); err != nil {
		utils.GetLogger().Warn("Discarding malformed journey cache entry",
			zap.String("partyId", partyID), zap.Error(err))
		metrics.RecordJourneyCacheLookup("miss")
		return nil
	}
	metrics.RecordJourneyCacheLookup("hit")
	return &dashboard
}

func (s *DefaultJourneyService) storeDashboard(ctx context.Context, dashboard *models.JourneyDashboard) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = utils.JourneyCacheTTL
	}
	data, err := json.Marshal(dashboard)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.JourneyCachePrefix+dashboard.PartyID, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache journey dashboard",
			zap.String("partyId", dashboard.PartyID), zap.Error(err))
	}
}

func (s *DefaultJourneyService) invalidateDashboard(ctx context.Context, partyID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.JourneyCachePrefix+partyID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate journey cache",
			zap.String("partyId", partyID), zap.Error(err))
	}
}
