package enquiry

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"partypilot/events"
	"partypilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeEnquiryRepo struct {
	enquiries map[string]*models.Enquiry
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{enquiries: make(map[string]*models.Enquiry)}
}

func (r *fakeEnquiryRepo) GetByID(id string) (*models.Enquiry, error) {
	e, ok := r.enquiries[id]
	if !ok {
		return nil, fmt.Errorf("no enquiry with id %s", id)
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEnquiryRepo) GetByParty(partyID string) ([]models.Enquiry, error) {
	var out []models.Enquiry
	for _, e := range r.enquiries {
		if e.PartyID == partyID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnquiryRepo) GetByPartyAndCategory(partyID, category string) (*models.Enquiry, error) {
	var latest *models.Enquiry
	for _, e := range r.enquiries {
		if e.PartyID != partyID || e.SupplierCategory != category {
			continue
		}
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeEnquiryRepo) Create(enquiry *models.Enquiry) error {
	cp := *enquiry
	r.enquiries[enquiry.ID] = &cp
	return nil
}

func (r *fakeEnquiryRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	e, ok := r.enquiries[id]
	if !ok {
		return fmt.Errorf("no enquiry with id %s", id)
	}
	if v, ok := updateDoc["status"].(string); ok {
		e.Status = v
	}
	if v, ok := updateDoc["payment_status"].(string); ok {
		e.PaymentStatus = v
	}
	if v, ok := updateDoc["supplier_response"].(string); ok {
		e.SupplierResponse = v
	}
	return nil
}

func (r *fakeEnquiryRepo) Delete(id string) error {
	delete(r.enquiries, id)
	return nil
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

func (r *fakePartyRepo) Create(party *models.PartyPlan) error {
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) Update(party *models.PartyPlan) error {
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (r *fakePartyRepo) Delete(id string) error { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*models.Supplier
}

func (r *fakeSupplierRepo) GetByID(id string) (*models.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("no supplier with id %s", id)
	}
	return s, nil
}

func (r *fakeSupplierRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Supplier, error) {
	return r.GetByID(id)
}

func (r *fakeSupplierRepo) GetAll() ([]models.Supplier, error) { return nil, nil }

func (r *fakeSupplierRepo) GetByCategory(category string) ([]models.Supplier, error) {
	return nil, nil
}

func (r *fakeSupplierRepo) Create(supplier *models.Supplier) error { return nil }

func (r *fakeSupplierRepo) Update(supplier *models.Supplier) error { return nil }

func (r *fakeSupplierRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (r *fakeSupplierRepo) Delete(id string) error { return nil }

type recordedPush struct {
	target string
	id     string
	title  string
}

type fakeNotifier struct {
	pushes []recordedPush
}

func (f *fakeNotifier) SendCustomerPushNotification(ctx context.Context, partyID, title, body string, data map[string]string) error {
	f.pushes = append(f.pushes, recordedPush{target: "customer", id: partyID, title: title})
	return nil
}

func (f *fakeNotifier) SendSupplierPushNotification(ctx context.Context, supplierID, title, body string, data map[string]string) error {
	f.pushes = append(f.pushes, recordedPush{target: "supplier", id: supplierID, title: title})
	return nil
}

func newTestEnquiryService(t *testing.T, autoAccept bool) (*DefaultEnquiryService, *fakeEnquiryRepo, *fakeNotifier, *events.InMemoryBus) {
	t.Helper()

	supplier := &models.Supplier{
		ID:         "sup-1",
		Name:       "Bella's Bouncy Castles",
		Category:   "entertainment",
		TotalPrice: 180,
		AutoAccept: autoAccept,
	}
	party := &models.PartyPlan{
		ID:         "party-1",
		CustomerID: "cust-1",
		ChildName:  "Ada",
		Date:       time.Now().AddDate(0, 1, 0),
		Slots: []models.SupplierSlot{
			{Type: "entertainment", Supplier: supplier},
			{Type: "venue"},
		},
	}

	repo := newFakeEnquiryRepo()
	notifier := &fakeNotifier{}
	bus := events.NewInMemoryBus()
	svc, err := NewDefaultEnquiryService(
		repo,
		&fakePartyRepo{parties: map[string]*models.PartyPlan{"party-1": party}},
		&fakeSupplierRepo{suppliers: map[string]*models.Supplier{"sup-1": supplier}},
		bus,
		notifier,
		nil,
	)
	require.NoError(t, err)
	return svc, repo, notifier, bus
}

func TestCreateEnquiryPendingPath(t *testing.T) {
	svc, _, notifier, bus := newTestEnquiryService(t, false)

	var statusEvents []events.EnquiryStatusChanged
	bus.Subscribe(events.TopicEnquiryStatusChanged, func(payload any) {
		if evt, ok := payload.(events.EnquiryStatusChanged); ok {
			statusEvents = append(statusEvents, evt)
		}
	})

	enq, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "Can you do the 14th?")
	require.NoError(t, err)

	assert.Equal(t, models.EnquiryStatusPending, enq.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, enq.PaymentStatus)
	assert.False(t, enq.AutoAccepted)
	assert.Empty(t, enq.SupplierResponse)
	assert.Equal(t, float64(180), enq.QuotedPrice)

	// The supplier gets pinged, not the customer.
	require.Len(t, notifier.pushes, 1)
	assert.Equal(t, "supplier", notifier.pushes[0].target)
	assert.Equal(t, "sup-1", notifier.pushes[0].id)

	require.Len(t, statusEvents, 1)
	assert.Equal(t, models.EnquiryStatusPending, statusEvents[0].Status)
}

func TestCreateEnquiryAutoAcceptPath(t *testing.T) {
	svc, _, notifier, _ := newTestEnquiryService(t, true)

	enq, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	require.NoError(t, err)

	assert.Equal(t, models.EnquiryStatusAccepted, enq.Status)
	assert.True(t, enq.AutoAccepted)
	assert.True(t, strings.Contains(enq.SupplierResponse, models.AutoResponseMarker))
	require.NotNil(t, enq.SupplierResponseDate)

	// An auto-accepted response is not a manual confirmation.
	assert.False(t, enq.ManuallyAccepted())

	// The customer hears about the acceptance immediately.
	require.Len(t, notifier.pushes, 1)
	assert.Equal(t, "customer", notifier.pushes[0].target)
	assert.Equal(t, "party-1", notifier.pushes[0].id)
}

func TestCreateEnquiryRequiresSupplierInSlot(t *testing.T) {
	svc, _, _, _ := newTestEnquiryService(t, false)

	_, err := svc.CreateEnquiry(context.Background(), "party-1", "venue", "")
	assert.Error(t, err)

	_, err = svc.CreateEnquiry(context.Background(), "party-1", "catering", "")
	assert.Error(t, err)
}

func TestCreateEnquiryRejectsDuplicates(t *testing.T) {
	svc, repo, _, _ := newTestEnquiryService(t, false)

	first, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	require.NoError(t, err)

	_, err = svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	assert.Error(t, err, "a live enquiry for the slot blocks a second one")

	// A declined enquiry no longer blocks re-enquiring.
	repo.enquiries[first.ID].Status = models.EnquiryStatusDeclined
	_, err = svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	assert.NoError(t, err)
}

func TestRespondToEnquiryAccept(t *testing.T) {
	svc, _, notifier, _ := newTestEnquiryService(t, false)

	created, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	require.NoError(t, err)
	notifier.pushes = nil

	enq, err := svc.RespondToEnquiry(context.Background(), created.ID, true, "Looking forward to it!")
	require.NoError(t, err)

	assert.Equal(t, models.EnquiryStatusAccepted, enq.Status)
	assert.False(t, enq.AutoAccepted)
	assert.Equal(t, "Looking forward to it!", enq.SupplierResponse)
	require.NotNil(t, enq.SupplierResponseDate)
	assert.True(t, enq.ManuallyAccepted())

	require.Len(t, notifier.pushes, 1)
	assert.Equal(t, "customer", notifier.pushes[0].target)
	assert.Equal(t, "Enquiry accepted", notifier.pushes[0].title)
}

func TestRespondToEnquiryDecline(t *testing.T) {
	svc, _, _, _ := newTestEnquiryService(t, false)

	created, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	require.NoError(t, err)

	enq, err := svc.RespondToEnquiry(context.Background(), created.ID, false, "Fully booked that day, sorry")
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusDeclined, enq.Status)

	// Only pending enquiries can be responded to.
	_, err = svc.RespondToEnquiry(context.Background(), created.ID, true, "changed my mind")
	assert.Error(t, err)
}

func TestRecordPaymentStatus(t *testing.T) {
	svc, _, notifier, bus := newTestEnquiryService(t, true)

	created, err := svc.CreateEnquiry(context.Background(), "party-1", "entertainment", "")
	require.NoError(t, err)
	notifier.pushes = nil

	var last events.EnquiryStatusChanged
	bus.Subscribe(events.TopicEnquiryStatusChanged, func(payload any) {
		if evt, ok := payload.(events.EnquiryStatusChanged); ok {
			last = evt
		}
	})

	enq, err := svc.RecordPaymentStatus(context.Background(), created.ID, models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, enq.PaymentStatus)
	assert.Equal(t, models.PaymentStatusPaid, last.PaymentStatus)

	// The supplier learns the deposit landed.
	require.Len(t, notifier.pushes, 1)
	assert.Equal(t, "supplier", notifier.pushes[0].target)

	_, err = svc.RecordPaymentStatus(context.Background(), created.ID, "refunded")
	assert.Error(t, err)
}
