package registry

import (
	"context"
	"fmt"
	"testing"
	"time"

	registryRepo "partypilot/database/repository/registry"
	"partypilot/events"
	"partypilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeRegistryRepo struct {
	registries map[string]*models.GiftRegistry
}

func newFakeRegistryRepo() *fakeRegistryRepo {
	return &fakeRegistryRepo{registries: make(map[string]*models.GiftRegistry)}
}

func (r *fakeRegistryRepo) GetByID(id string) (*models.GiftRegistry, error) {
	reg, ok := r.registries[id]
	if !ok {
		return nil, fmt.Errorf("no registry with id %s", id)
	}
	cp := *reg
	cp.Items = append([]models.RegistryItem(nil), reg.Items...)
	return &cp, nil
}

func (r *fakeRegistryRepo) GetByParty(partyID string) (*models.GiftRegistry, error) {
	for _, reg := range r.registries {
		if reg.PartyID == partyID {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistryRepo) Create(registry *models.GiftRegistry) error {
	cp := *registry
	r.registries[registry.ID] = &cp
	return nil
}

func (r *fakeRegistryRepo) Update(registry *models.GiftRegistry) error {
	cp := *registry
	r.registries[registry.ID] = &cp
	return nil
}

func (r *fakeRegistryRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	reg, ok := r.registries[id]
	if !ok {
		return fmt.Errorf("no registry with id %s", id)
	}
	if items, ok := updateDoc["items"].([]models.RegistryItem); ok {
		reg.Items = items
	}
	return nil
}

func (r *fakeRegistryRepo) ReserveItem(registryID, itemID, guestName string) error {
	reg, ok := r.registries[registryID]
	if !ok {
		return fmt.Errorf("no registry with id %s", registryID)
	}
	for i := range reg.Items {
		if reg.Items[i].ID != itemID {
			continue
		}
		if reg.Items[i].Reserved {
			return registryRepo.ErrItemAlreadyReserved
		}
		now := time.Now()
		reg.Items[i].Reserved = true
		reg.Items[i].ReservedBy = guestName
		reg.Items[i].ReservedAt = &now
		return nil
	}
	return registryRepo.ErrItemAlreadyReserved
}

func (r *fakeRegistryRepo) ReleaseItem(registryID, itemID string) error {
	reg, ok := r.registries[registryID]
	if !ok {
		return fmt.Errorf("no registry with id %s", registryID)
	}
	for i := range reg.Items {
		if reg.Items[i].ID == itemID {
			reg.Items[i].Reserved = false
			reg.Items[i].ReservedBy = ""
			reg.Items[i].ReservedAt = nil
			return nil
		}
	}
	return fmt.Errorf("item %s not found", itemID)
}

type fakePartyRepo struct {
	parties map[string]*models.PartyPlan
}

func (r *fakePartyRepo) GetByID(id string) (*models.PartyPlan, error) {
	p, ok := r.parties[id]
	if !ok {
		return nil, fmt.Errorf("no party with id %s", id)
	}
	return p, nil
}

func (r *fakePartyRepo) GetByCustomer(customerID string) ([]models.PartyPlan, error) {
	return nil, nil
}

func (r *fakePartyRepo) Create(party *models.PartyPlan) error { return nil }

func (r *fakePartyRepo) Update(party *models.PartyPlan) error { return nil }

func (r *fakePartyRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (r *fakePartyRepo) Delete(id string) error { return nil }

func newTestRegistryService(t *testing.T) (*DefaultRegistryService, *fakeRegistryRepo, *events.InMemoryBus) {
	t.Helper()
	repo := newFakeRegistryRepo()
	parties := &fakePartyRepo{parties: map[string]*models.PartyPlan{
		"party-1": {ID: "party-1", ChildName: "Ada"},
	}}
	bus := events.NewInMemoryBus()
	svc, err := NewDefaultRegistryService(repo, parties, bus)
	require.NoError(t, err)
	return svc, repo, bus
}

func TestCreateRegistryOnePerParty(t *testing.T) {
	svc, _, _ := newTestRegistryService(t)
	ctx := context.Background()

	reg, err := svc.CreateRegistry(ctx, "party-1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "Ada's party gifts", reg.Title)
	assert.Empty(t, reg.Items)

	_, err = svc.CreateRegistry(ctx, "party-1", "second try")
	assert.Error(t, err)

	_, err = svc.CreateRegistry(ctx, "missing-party", "")
	assert.Error(t, err)
}

func TestAddAndRemoveItems(t *testing.T) {
	svc, _, _ := newTestRegistryService(t)
	ctx := context.Background()

	reg, err := svc.CreateRegistry(ctx, "party-1", "Gifts")
	require.NoError(t, err)

	updated, err := svc.AddItem(ctx, reg.ID, models.RegistryItem{
		Name:  "Lego castle",
		Price: 45,
		// Caller-supplied reservation fields are ignored.
		Reserved:   true,
		ReservedBy: "sneaky",
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.NotEmpty(t, updated.Items[0].ID)
	assert.False(t, updated.Items[0].Reserved)
	assert.Empty(t, updated.Items[0].ReservedBy)

	_, err = svc.AddItem(ctx, reg.ID, models.RegistryItem{})
	assert.Error(t, err, "items need a name")

	updated, err = svc.RemoveItem(ctx, reg.ID, updated.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)

	_, err = svc.RemoveItem(ctx, reg.ID, "missing-item")
	assert.Error(t, err)
}

func TestReserveItemOnlyOnce(t *testing.T) {
	svc, repo, bus := newTestRegistryService(t)
	ctx := context.Background()

	var reservations []events.RegistryItemReserved
	bus.Subscribe(events.TopicRegistryItemReserved, func(payload any) {
		if evt, ok := payload.(events.RegistryItemReserved); ok {
			reservations = append(reservations, evt)
		}
	})

	reg, err := svc.CreateRegistry(ctx, "party-1", "Gifts")
	require.NoError(t, err)
	updated, err := svc.AddItem(ctx, reg.ID, models.RegistryItem{Name: "Scooter"})
	require.NoError(t, err)
	itemID := updated.Items[0].ID

	require.NoError(t, svc.ReserveItem(ctx, reg.ID, itemID, "Grandma"))

	err = svc.ReserveItem(ctx, reg.ID, itemID, "Uncle Bob")
	assert.ErrorIs(t, err, registryRepo.ErrItemAlreadyReserved)

	assert.Error(t, svc.ReserveItem(ctx, reg.ID, itemID, ""))

	// Only the winning reservation was announced.
	require.Len(t, reservations, 1)
	assert.Equal(t, "Grandma", reservations[0].GuestName)

	// Releasing frees the item for someone else.
	require.NoError(t, svc.ReleaseItem(ctx, reg.ID, itemID))
	require.NoError(t, svc.ReserveItem(ctx, reg.ID, itemID, "Uncle Bob"))

	stored, err := repo.GetByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Uncle Bob", stored.Items[0].ReservedBy)
}
