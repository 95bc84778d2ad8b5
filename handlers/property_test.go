package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/models"
	"estatecrm/services"
	"estatecrm/utils"
)

type stubPropertyStore struct {
	property *models.Property
}

func (s *stubPropertyStore) Create(context.Context, *models.Property) error { return nil }

func (s *stubPropertyStore) FindByID(_ context.Context, id string) (*models.Property, error) {
	if s.property != nil && s.property.ID == id {
		copied := *s.property
		return &copied, nil
	}
	return nil, nil
}

func (s *stubPropertyStore) Find(context.Context, bson.M, int64, int64, bson.D) ([]models.Property, error) {
	return nil, nil
}

func (s *stubPropertyStore) Count(context.Context, bson.M) (int64, error) { return 0, nil }

func (s *stubPropertyStore) Update(context.Context, string, bson.M) (*models.Property, error) {
	return nil, nil
}

func (s *stubPropertyStore) Delete(context.Context, string) (bool, error) { return false, nil }

func (s *stubPropertyStore) ExistsByListingID(context.Context, string) (bool, error) {
	return false, nil
}

func (s *stubPropertyStore) IncrementViews(_ context.Context, id string) (*models.Property, error) {
	if s.property != nil && s.property.ID == id {
		s.property.Views++
		copied := *s.property
		return &copied, nil
	}
	return nil, nil
}

func setupPropertyTest(store *stubPropertyStore) *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	h := NewPropertyHandler(services.NewPropertyService(store, nil))
	e.GET("/api/properties", h.List)
	e.GET("/api/properties/search", h.Search)
	e.GET("/api/properties/:id", h.Get)
	return e
}

func TestPropertySearchRequiresQ(t *testing.T) {
	e := setupPropertyTest(&stubPropertyStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/properties/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
}

func TestPropertyListBadRangeRendersFieldErrors(t *testing.T) {
	e := setupPropertyTest(&stubPropertyStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/properties?minPrice=cheap", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "minPrice", body.Errors[0].Path)
}

func TestPropertyGetIncrementsViews(t *testing.T) {
	store := &stubPropertyStore{property: &models.Property{ID: "p-1", Title: "Villa", Views: 7}}
	e := setupPropertyTest(store)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/p-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Views int64 `json:"views"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, int64(8), body.Data.Views)
	assert.Equal(t, int64(8), store.property.Views)
}

func TestPropertyGetNotFound(t *testing.T) {
	e := setupPropertyTest(&stubPropertyStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/properties/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Property not found", body["message"])
}
