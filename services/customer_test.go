package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/utils"
)

type fakeCustomerReader struct {
	byID map[primitive.ObjectID]*models.Customer
}

func (f *fakeCustomerReader) FindByID(_ context.Context, id primitive.ObjectID) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerReader) Find(_ context.Context, _ bson.M, _, limit int64, _ bson.D) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.byID {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerReader) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeCustomerReader) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if status, ok := fields["system.status"].(models.CustomerStatus); ok {
		c.System.Status = status
	}
	copied := *c
	return &copied, nil
}

func TestCustomerUpdateStatus(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeCustomerReader{byID: map[primitive.ObjectID]*models.Customer{
		id: {ID: id, System: models.CustomerSystem{Status: models.CustomerStatusActive}},
	}}
	svc := NewCustomerService(store)
	ctx := context.Background()

	customer, err := svc.UpdateStatus(ctx, id, models.CustomerStatusChurned)
	require.NoError(t, err)
	assert.Equal(t, models.CustomerStatusChurned, customer.System.Status)

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, id, "Hibernating")
		require.Error(t, err)
		assert.Equal(t, 400, err.(*utils.AppError).Code)
	})

	t.Run("missing customer is 404", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, primitive.NewObjectID(), models.CustomerStatusInactive)
		require.Error(t, err)
		assert.Equal(t, 404, err.(*utils.AppError).Code)
	})
}

func TestCustomerListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerReader{byID: map[primitive.ObjectID]*models.Customer{}})

	_, err := svc.List(context.Background(), CustomerQuery{Status: "Sleeping"})
	require.Error(t, err)
	assert.Equal(t, 400, err.(*utils.AppError).Code)
}
