package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/utils"
)

func setupMirrorTest() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	h := NewMirrorHandler(nil)
	e.POST("/api/properties/mirror", h.Create)
	return e
}

func TestMirrorCreateEmptyBodyRejected(t *testing.T) {
	e := setupMirrorTest()

	// The binder leaves the document a nil map for a zero-length body; the
	// handler must answer with the 400 envelope, not panic writing the id.
	req := httptest.NewRequest(http.MethodPost, "/api/properties/mirror", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
}

func TestMirrorCreateEmptyObjectRejected(t *testing.T) {
	e := setupMirrorTest()

	req := httptest.NewRequest(http.MethodPost, "/api/properties/mirror", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
