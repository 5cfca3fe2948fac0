package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fleetworks/fleet-manager-api/models"
)

func TestDaysToExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, -5, models.DaysToExpiry(now.AddDate(0, 0, -5), now))
	assert.Equal(t, 0, models.DaysToExpiry(now, now))
	assert.Equal(t, 30, models.DaysToExpiry(now.AddDate(0, 0, 30), now))
	assert.Equal(t, 365, models.DaysToExpiry(now.AddDate(0, 0, 365), now))

	// partial days round up
	assert.Equal(t, 1, models.DaysToExpiry(now.Add(6*time.Hour), now))
}

func TestComplianceStatusForDays(t *testing.T) {
	assert.Equal(t, models.ComplianceStatusExpired, models.ComplianceStatusForDays(-1))
	assert.Equal(t, models.ComplianceStatusExpiring, models.ComplianceStatusForDays(0))
	assert.Equal(t, models.ComplianceStatusExpiring, models.ComplianceStatusForDays(30))
	assert.Equal(t, models.ComplianceStatusValid, models.ComplianceStatusForDays(31))
}

func TestStatusBoundariesAgreeAcrossCallSites(t *testing.T) {
	// the same "now" must classify identically no matter where the derivation
	// happens, so run the full pipeline twice
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 30)

	first := models.ComplianceStatusForDays(models.DaysToExpiry(expiry, now))
	second := models.ComplianceStatusForDays(models.DaysToExpiry(expiry, now))

	assert.Equal(t, first, second)
	assert.Equal(t, models.ComplianceStatusExpiring, first)
}
