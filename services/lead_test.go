package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estatecrm/models"
	"estatecrm/utils"
)

type fakeLeadStore struct {
	byID map[primitive.ObjectID]*models.Lead
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{byID: map[primitive.ObjectID]*models.Lead{}}
}

func (f *fakeLeadStore) Create(_ context.Context, l *models.Lead) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	copied := *l
	f.byID[l.ID] = &copied
	return nil
}

func (f *fakeLeadStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lead, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLeadStore) Find(_ context.Context, _ bson.M, _, limit int64, _ bson.D) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range f.byID {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeadStore) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeLeadStore) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Lead, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if status, ok := fields["system.leadStatus"].(models.LeadStatus); ok {
		l.System.Status = status
	}
	if agent, ok := fields["system.assignedAgent"].(primitive.ObjectID); ok {
		l.System.AssignedAgent = &agent
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLeadStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

// fakeCustomerStore enforces leadId uniqueness the way the real collection's
// unique index does, answering with a driver duplicate-key error.
type fakeCustomerStore struct {
	byLeadID map[primitive.ObjectID]*models.Customer
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byLeadID: map[primitive.ObjectID]*models.Customer{}}
}

func (f *fakeCustomerStore) Create(_ context.Context, c *models.Customer) error {
	if _, exists := f.byLeadID[c.LeadID]; exists {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	c.ID = primitive.NewObjectID()
	copied := *c
	f.byLeadID[c.LeadID] = &copied
	return nil
}

func (f *fakeCustomerStore) FindByLeadID(_ context.Context, leadID primitive.ObjectID) (*models.Customer, error) {
	c, ok := f.byLeadID[leadID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func newLeadFixture(t *testing.T, store *fakeLeadStore, status models.LeadStatus) *models.Lead {
	t.Helper()
	lead := &models.Lead{
		Identity: models.LeadIdentity{FullName: "Asha Rao", Email: "asha@example.com", Phone: "9900000000"},
		System:   models.LeadSystem{Status: status},
	}
	require.NoError(t, store.Create(context.Background(), lead))
	return lead
}

func TestLeadConvertCreatesExactlyOneCustomer(t *testing.T) {
	leads := newFakeLeadStore()
	customers := newFakeCustomerStore()
	svc := NewLeadService(leads, customers)
	ctx := context.Background()

	lead := newLeadFixture(t, leads, models.LeadStatusBooked)

	customer, err := svc.Convert(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, customer.LeadID)
	assert.Equal(t, models.CustomerStatusActive, customer.System.Status)
	assert.Equal(t, lead.Identity, customer.Identity)

	updated, _ := leads.FindByID(ctx, lead.ID)
	assert.Equal(t, models.LeadStatusConverted, updated.System.Status)
}

func TestLeadConvertSecondAttemptIsRejectedWithoutDuplicate(t *testing.T) {
	leads := newFakeLeadStore()
	customers := newFakeCustomerStore()
	svc := NewLeadService(leads, customers)
	ctx := context.Background()

	lead := newLeadFixture(t, leads, models.LeadStatusBooked)

	_, err := svc.Convert(ctx, lead.ID)
	require.NoError(t, err)

	_, err = svc.Convert(ctx, lead.ID)
	require.Error(t, err)
	appErr := err.(*utils.AppError)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "already converted")

	assert.Len(t, customers.byLeadID, 1)
}

func TestLeadConvertRaceFallsBackToUniqueIndex(t *testing.T) {
	// Lead status still says Booked, but a concurrent conversion already
	// inserted the customer. The duplicate-key error must map to the same
	// "already converted" answer.
	leads := newFakeLeadStore()
	customers := newFakeCustomerStore()
	svc := NewLeadService(leads, customers)
	ctx := context.Background()

	lead := newLeadFixture(t, leads, models.LeadStatusBooked)
	require.NoError(t, customers.Create(ctx, &models.Customer{LeadID: lead.ID}))

	_, err := svc.Convert(ctx, lead.ID)
	require.Error(t, err)
	assert.Contains(t, err.(*utils.AppError).Message, "already converted")
	assert.Len(t, customers.byLeadID, 1)
}

func TestLeadConvertLostLeadRejected(t *testing.T) {
	leads := newFakeLeadStore()
	svc := NewLeadService(leads, newFakeCustomerStore())

	lead := newLeadFixture(t, leads, models.LeadStatusLost)

	_, err := svc.Convert(context.Background(), lead.ID)
	require.Error(t, err)
	assert.Equal(t, 400, err.(*utils.AppError).Code)
}

func TestLeadConvertMissingLead(t *testing.T) {
	svc := NewLeadService(newFakeLeadStore(), newFakeCustomerStore())

	_, err := svc.Convert(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, err.(*utils.AppError).Code)
}

func TestLeadUpdateStatus(t *testing.T) {
	leads := newFakeLeadStore()
	svc := NewLeadService(leads, newFakeCustomerStore())
	ctx := context.Background()

	lead := newLeadFixture(t, leads, models.LeadStatusNew)

	updated, err := svc.UpdateStatus(ctx, lead.ID, models.LeadStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusContacted, updated.System.Status)

	t.Run("unknown status is a validation error", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, lead.ID, "Meditating")
		require.Error(t, err)
		assert.Equal(t, 400, err.(*utils.AppError).Code)
	})

	t.Run("converted must go through the convert endpoint", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, lead.ID, models.LeadStatusConverted)
		require.Error(t, err)
	})

	t.Run("terminal leads stay terminal", func(t *testing.T) {
		lost := newLeadFixture(t, leads, models.LeadStatusLost)
		_, err := svc.UpdateStatus(ctx, lost.ID, models.LeadStatusContacted)
		require.Error(t, err)
	})
}

func TestLeadCreateDefaultsToNew(t *testing.T) {
	leads := newFakeLeadStore()
	svc := NewLeadService(leads, newFakeCustomerStore())

	lead, err := svc.Create(context.Background(), &models.CreateLeadRequest{
		Identity: models.LeadIdentity{FullName: "First Last", Email: "f@example.com"},
		Source:   "walk-in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.System.Status)
	assert.Equal(t, "walk-in", lead.System.Source)
	assert.False(t, lead.ID.IsZero())
}
