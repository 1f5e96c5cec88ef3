package registry

import (
	"context"
	"fmt"
	"time"

	"partypilot/events"
	"partypilot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateRegistry attaches a gift registry to a party. A party carries at
// most one registry.
func (s *DefaultRegistryService) CreateRegistry(ctx context.Context, partyID, title string) (*models.GiftRegistry, error) {
	party, err := s.PartyRepo.GetByID(partyID)
	if err != nil {
		return nil, fmt.Errorf("party not found: %w", err)
	}

	existing, err := s.Repo.GetByParty(partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registry: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("party %s already has a gift registry", partyID)
	}

	if title == "" {
		title = fmt.Sprintf("%s's party gifts", party.ChildName)
	}

	now := time.Now()
	reg := &models.GiftRegistry{
		ID:        uuid.NewString(),
		PartyID:   partyID,
		Title:     title,
		Items:     []models.RegistryItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(reg); err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	return reg, nil
}

// GetByParty returns the party's registry, or nil when none exists yet.
func (s *DefaultRegistryService) GetByParty(ctx context.Context, partyID string) (*models.GiftRegistry, error) {
	return s.Repo.GetByParty(partyID)
}

func (s *DefaultRegistryService) AddItem(ctx context.Context, registryID string, item models.RegistryItem) (*models.GiftRegistry, error) {
	reg, err := s.Repo.GetByID(registryID)
	if err != nil {
		return nil, fmt.Errorf("registry not found: %w", err)
	}

	if item.Name == "" {
		return nil, fmt.Errorf("registry item needs a name")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Reserved = false
	item.ReservedBy = ""
	item.ReservedAt = nil

	reg.Items = append(reg.Items, item)
	reg.UpdatedAt = time.Now()

	if err := s.Repo.UpdateSetDocument(reg.ID, bson.M{
		"items":     reg.Items,
		"updatedAt": reg.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to add registry item: %w", err)
	}
	return reg, nil
}

func (s *DefaultRegistryService) RemoveItem(ctx context.Context, registryID, itemID string) (*models.GiftRegistry, error) {
	reg, err := s.Repo.GetByID(registryID)
	if err != nil {
		return nil, fmt.Errorf("registry not found: %w", err)
	}

	kept := reg.Items[:0]
	found := false
	for _, item := range reg.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, fmt.Errorf("item %s not found in registry %s", itemID, registryID)
	}

	reg.Items = kept
	reg.UpdatedAt = time.Now()

	if err := s.Repo.UpdateSetDocument(reg.ID, bson.M{
		"items":     reg.Items,
		"updatedAt": reg.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to remove registry item: %w", err)
	}
	return reg, nil
}

// ReserveItem claims an item for a guest. The repository enforces that two
// guests cannot both win the same gift.
func (s *DefaultRegistryService) ReserveItem(ctx context.Context, registryID, itemID, guestName string) error {
	if guestName == "" {
		return fmt.Errorf("guest name is required to reserve an item")
	}
	if err := s.Repo.ReserveItem(registryID, itemID, guestName); err != nil {
		return err
	}
	if s.Bus != nil {
		s.Bus.Publish(events.TopicRegistryItemReserved, events.RegistryItemReserved{
			RegistryID: registryID,
			ItemID:     itemID,
			GuestName:  guestName,
		})
	}
	return nil
}

func (s *DefaultRegistryService) ReleaseItem(ctx context.Context, registryID, itemID string) error {
	return s.Repo.ReleaseItem(registryID, itemID)
}
