package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetworks/fleet-manager-api/api"
)

func TestRevokeTokenMissingBearerPrefix(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/auth/logout", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Basic b3BzOnBhc3M=")

	rr := httptest.NewRecorder()
	api.RevokeToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `{"error": "unauthorized"}`, rr.Body.String())
}

func TestRevokeTokenEmptyAuthorizationHeader(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/auth/logout", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	api.RevokeToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
