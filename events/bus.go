// Package events provides the in-process event bus used to propagate state
// changes between otherwise unrelated services (profile saves invalidating
// journey caches, enquiry updates triggering notifications). Topics are
// named and payloads are typed structs, so subscribers can be tested
// without any transport.
package events

import "sync"

// Topic names one event stream on the bus.
type Topic string

const (
	TopicSectionSaved         Topic = "supplier.profile.section_saved"
	TopicEnquiryStatusChanged Topic = "enquiry.status_changed"
	TopicPartySlotChanged     Topic = "party.slot_changed"
	TopicRegistryItemReserved Topic = "registry.item_reserved"
)

// SectionSaved is published after a profile section save succeeds.
type SectionSaved struct {
	SupplierID string
	Section    string
}

// EnquiryStatusChanged is published whenever an enquiry's status or payment
// status changes.
type EnquiryStatusChanged struct {
	PartyID          string
	EnquiryID        string
	SupplierCategory string
	Status           string
	PaymentStatus    string
}

// PartySlotChanged is published when a slot's supplier is assigned or cleared.
type PartySlotChanged struct {
	PartyID  string
	SlotType string
}

// RegistryItemReserved is published when a guest reserves a registry item.
type RegistryItemReserved struct {
	RegistryID string
	ItemID     string
	GuestName  string
}

// Handler receives the payload published on a topic.
type Handler func(payload any)

// Bus is a publish/subscribe boundary for in-process events.
type Bus interface {
	Publish(topic Topic, payload any)
	// Subscribe registers a handler and returns an unsubscribe func.
	Subscribe(topic Topic, h Handler) func()
}

// InMemoryBus is the process-local Bus implementation. Delivery is
// synchronous in publish order; handlers must not block.
type InMemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]Handler
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{subs: make(map[Topic]map[int]Handler)}
}

func (b *InMemoryBus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}

func (b *InMemoryBus) Subscribe(topic Topic, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}
