// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/device-sync-gate/internal/mock"
	"github.com/MKhiriev/device-sync-gate/models"
)

func TestRequiredCapabilities(t *testing.T) {
	tests := []struct {
		category models.Category
		want     []models.Capability
	}{
		{models.CategoryContacts, []models.Capability{models.CapabilityReadContacts}},
		{models.CategoryCallLogs, []models.Capability{models.CapabilityReadCallLog}},
		{models.CategoryMessages, []models.Capability{models.CapabilityReadSMS, models.CapabilityReceiveSMS}},
		{models.CategoryNotifications, []models.Capability{models.CapabilityNotificationListener}},
		{models.CategoryEmailAccounts, []models.Capability{models.CapabilityGetAccounts}},
		{models.CategoryCalendar, []models.Capability{models.CapabilityReadCalendar}},
		{models.CategoryDeviceInfo, nil},
		{models.Category(0), nil},
		{models.Category(200), nil},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := RequiredCapabilities(tt.category).Slice()
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredCapabilities_EveryCategoryCovered(t *testing.T) {
	for _, c := range models.AllCategories() {
		if c == models.CategoryDeviceInfo {
			continue
		}
		assert.NotZero(t, RequiredCapabilities(c).Len(), "category %s has no capability mapping", c)
	}
}

func TestGate_IsCategoryPermitted(t *testing.T) {
	grants := NewStaticGrants(models.CapabilityReadContacts, models.CapabilityReadSMS)
	gate := NewGate(grants)

	assert.True(t, gate.IsCategoryPermitted(models.CategoryContacts))
	assert.False(t, gate.IsCategoryPermitted(models.CategoryMessages), "needs both SMS grants")
	assert.False(t, gate.IsCategoryPermitted(models.CategoryNotifications))
	assert.True(t, gate.IsCategoryPermitted(models.CategoryDeviceInfo))
	assert.True(t, gate.IsCategoryPermitted(models.Category(99)), "unknown category requires nothing")

	grants.Grant(models.CapabilityReceiveSMS)
	assert.True(t, gate.IsCategoryPermitted(models.CategoryMessages))

	grants.Revoke(models.CapabilityReadContacts)
	assert.False(t, gate.IsCategoryPermitted(models.CategoryContacts))
}

func TestGate_MissingCapabilities_LeastPrivilege(t *testing.T) {
	gate := NewGate(NewStaticGrants())

	missing := gate.MissingCapabilities(models.NewCategorySet(models.CategoryContacts))
	assert.Equal(t, []models.Capability{models.CapabilityReadContacts}, missing.Slice())

	missing = gate.MissingCapabilities(models.NewCategorySet(models.CategoryDeviceInfo))
	assert.Zero(t, missing.Len())

	missing = gate.MissingCapabilities(0)
	assert.Zero(t, missing.Len())
}

func TestGate_MissingCapabilities_SkipsGranted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grants := mock.NewMockGrantChecker(ctrl)
	grants.EXPECT().IsGranted(models.CapabilityReadSMS).Return(true)
	grants.EXPECT().IsGranted(models.CapabilityReceiveSMS).Return(false)
	grants.EXPECT().IsGranted(models.CapabilityReadCalendar).Return(false)

	gate := NewGate(grants)
	missing := gate.MissingCapabilities(models.NewCategorySet(models.CategoryMessages, models.CategoryCalendar))

	assert.Equal(t, []models.Capability{models.CapabilityReceiveSMS, models.CapabilityReadCalendar}, missing.Slice())
}

func TestStaticGrants_Granted(t *testing.T) {
	grants := NewStaticGrants(models.CapabilityGetAccounts)
	grants.Grant(models.CapabilityReadCallLog, models.Capability(0))

	assert.Equal(t,
		[]models.Capability{models.CapabilityReadCallLog, models.CapabilityGetAccounts},
		grants.Granted().Slice(),
	)
}
