package registry

import (
	"context"
	"fmt"

	partyRepo "partypilot/database/repository/party"
	registryRepo "partypilot/database/repository/registry"
	"partypilot/events"
	"partypilot/models"
)

// RegistryService manages a party's gift registry.
type RegistryService interface {
	CreateRegistry(ctx context.Context, partyID, title string) (*models.GiftRegistry, error)
	GetByParty(ctx context.Context, partyID string) (*models.GiftRegistry, error)
	AddItem(ctx context.Context, registryID string, item models.RegistryItem) (*models.GiftRegistry, error)
	RemoveItem(ctx context.Context, registryID, itemID string) (*models.GiftRegistry, error)
	ReserveItem(ctx context.Context, registryID, itemID, guestName string) error
	ReleaseItem(ctx context.Context, registryID, itemID string) error
}

// DefaultRegistryService is the production implementation.
type DefaultRegistryService struct {
	Repo      registryRepo.RegistryRepository
	PartyRepo partyRepo.PartyRepository
	Bus       events.Bus
}

func NewDefaultRegistryService(
	repo registryRepo.RegistryRepository,
	parties partyRepo.PartyRepository,
	bus events.Bus,
) (*DefaultRegistryService, error) {
	if repo == nil || parties == nil {
		return nil, fmt.Errorf("registry service initialization error: one or more dependencies are nil")
	}
	return &DefaultRegistryService{
		Repo:      repo,
		PartyRepo: parties,
		Bus:       bus,
	}, nil
}
