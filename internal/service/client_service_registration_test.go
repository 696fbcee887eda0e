// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/mock"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

func newTestRegistrationGuard(t *testing.T, ctrl *gomock.Controller) (RegistrationGuard, *mock.MockServerAdapter, store.SettingsStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	settings := store.NewMemorySettingsStore(logger.Nop())
	return NewRegistrationGuard(settings, mockAdapter, logger.Nop()), mockAdapter, settings
}

func registerRequest() models.RegisterDeviceRequest {
	return models.RegisterDeviceRequest{DeviceID: testIdentity.DeviceID, Metadata: testIdentity.Metadata}
}

func TestRegistrationGuard_AtMostOneCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, mockAdapter, settings := newTestRegistrationGuard(t, ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), registerRequest()).
		DoAndReturn(func(context.Context, models.RegisterDeviceRequest) (models.RegisterDeviceResponse, error) {
			<-release
			return models.RegisterDeviceResponse{Success: true}, nil
		}).
		Times(1)

	const callers = 64
	var wg sync.WaitGroup
	states := make(chan models.RegistrationState, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			states <- guard.RegisterSafely(ctx, testIdentity)
		}()
	}

	// every loser returns while the winner is still blocked
	require.Eventually(t, func() bool { return len(states) == callers-1 }, time.Second, time.Millisecond)
	for range callers - 1 {
		assert.Equal(t, models.RegistrationInProgress, <-states)
	}

	close(release)
	wg.Wait()
	assert.Equal(t, models.RegistrationCompleted, <-states)

	<-guard.Done()
	assert.True(t, guard.IsCompleted())

	confirmed, err := settings.Flag(ctx, FlagRegistrationConfirmed)
	require.NoError(t, err)
	assert.True(t, confirmed)

	// completed is terminal
	assert.Equal(t, models.RegistrationCompleted, guard.RegisterSafely(ctx, testIdentity))
	assert.False(t, guard.Reset())
	assert.Equal(t, models.RegistrationCompleted, guard.State())
}

func TestRegistrationGuard_FailureThenReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, mockAdapter, settings := newTestRegistrationGuard(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), registerRequest()).
			Return(models.RegisterDeviceResponse{}, adapter.ErrBadGateway),
		mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), registerRequest()).
			Return(models.RegisterDeviceResponse{Success: true, Message: "already registered"}, nil),
	)

	assert.NotPanics(t, func() {
		assert.Equal(t, models.RegistrationFailed, guard.RegisterSafely(ctx, testIdentity))
	})
	<-guard.Done()
	assert.False(t, guard.IsCompleted())

	// failed stays failed until reset
	assert.Equal(t, models.RegistrationFailed, guard.RegisterSafely(ctx, testIdentity))

	require.True(t, guard.Reset())
	assert.Equal(t, models.RegistrationNotStarted, guard.State())
	select {
	case <-guard.Done():
		t.Fatal("done channel of a new attempt must be open")
	default:
	}

	assert.Equal(t, models.RegistrationCompleted, guard.RegisterSafely(ctx, testIdentity))
	<-guard.Done()

	confirmed, err := settings.Flag(ctx, FlagRegistrationConfirmed)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestRegistrationGuard_RejectedResponseIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, mockAdapter, settings := newTestRegistrationGuard(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), registerRequest()).
		Return(models.RegisterDeviceResponse{Success: false, Message: "device blocked"}, nil)

	assert.Equal(t, models.RegistrationFailed, guard.RegisterSafely(ctx, testIdentity))

	confirmed, err := settings.Flag(ctx, FlagRegistrationConfirmed)
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestRegistrationGuard_ResetFromNotStarted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _, _ := newTestRegistrationGuard(t, ctrl)
	assert.False(t, guard.Reset())
	assert.Equal(t, models.RegistrationNotStarted, guard.State())
}

func TestRegistrationGuard_ConfirmationPersistFailureStillCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockSettingsStore(ctrl)
	guard := NewRegistrationGuard(mockStore, mockAdapter, logger.Nop())

	mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), gomock.Any()).Return(models.RegisterDeviceResponse{Success: true}, nil)
	mockStore.EXPECT().SetFlag(gomock.Any(), FlagRegistrationConfirmed, true).Return(assert.AnError)

	assert.Equal(t, models.RegistrationCompleted, guard.RegisterSafely(context.Background(), testIdentity))
}

func TestRegistrationGuard_FailureLoggedWithoutContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	injected := logger.NewLogger("device")
	injected.Logger = injected.Output(&buf)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	guard := NewRegistrationGuard(store.NewMemorySettingsStore(logger.Nop()), mockAdapter, injected)

	mockAdapter.EXPECT().CheckOrRegister(gomock.Any(), gomock.Any()).Return(models.RegisterDeviceResponse{}, adapter.ErrBadGateway)

	assert.Equal(t, models.RegistrationFailed, guard.RegisterSafely(context.Background(), testIdentity))
	assert.Contains(t, buf.String(), "device registration failed")
	assert.Contains(t, buf.String(), testIdentity.DeviceID)
}
