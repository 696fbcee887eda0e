// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/utils"
	"github.com/MKhiriev/device-sync-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}
	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "host and port", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "https with trailing slash", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "scheme only", in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPServerAdapter_TokenFromConfig(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:1", Token: " tok "}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok", a.Token())
}

func TestSetToken_AcceptsBearerHeaderValue(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	a.SetToken("Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── UserSubject ─────────────────────────────────────────────────────────────

func TestUserSubject(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Empty(t, a.UserSubject(), "no token, no subject")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"}).SignedString([]byte("k"))
	require.NoError(t, err)
	a.SetToken(token)
	assert.Equal(t, "user-7", a.UserSubject())

	a.SetToken("garbage")
	assert.Empty(t, a.UserSubject())
}

// ── FetchPolicy ─────────────────────────────────────────────────────────────

func TestFetchPolicy_Success(t *testing.T) {
	want := models.PolicyResponse{AllowedCategories: []string{"CONTACTS", "NOTIFICATIONS"}, Active: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, policyPath, r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.NewHasher(testHashKey).HexSum(body), r.Header.Get(hashHeader))

		var req models.PolicyRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "dev-1", req.DeviceID)
		assert.Equal(t, "user-1", req.UserSubject)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.FetchPolicy(context.Background(), models.PolicyRequest{DeviceID: "dev-1", UserSubject: " user-1 "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchPolicy_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusTooManyRequests, want: ErrServiceUnavailable},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{status: http.StatusGatewayTimeout, want: ErrServiceUnavailable},
		{status: http.StatusTeapot, want: ErrUnexpectedClientStatus},
		{status: http.StatusHTTPVersionNotSupported, want: ErrUnexpectedServerStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).FetchPolicy(context.Background(), models.PolicyRequest{DeviceID: "dev-1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestFetchPolicy_EmptyBodyUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchPolicy(context.Background(), models.PolicyRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "Service Unavailable")
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: ErrServiceUnavailable, want: true},
		{err: ErrBadGateway, want: true},
		{err: ErrInternalServerError, want: true},
		{err: ErrUnexpectedServerStatus, want: true},
		{err: ErrMalformedResponse, want: true},
		{err: ErrUnauthorized, want: false},
		{err: ErrConflict, want: false},
		{err: ErrUnexpectedClientStatus, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestFetchPolicy_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"allowed_categories": "CONTACTS"`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchPolicy(context.Background(), models.PolicyRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchPolicy_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.FetchPolicy(ctx, models.PolicyRequest{})
	assert.Error(t, err)
}

// ── CheckOrRegister ─────────────────────────────────────────────────────────

func TestCheckOrRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "no token set")

		var req models.RegisterDeviceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dev-1", req.DeviceID)
		assert.Equal(t, "Pixel", req.Metadata.Model)

		_ = json.NewEncoder(w).Encode(models.RegisterDeviceResponse{Success: true, Message: "already registered"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CheckOrRegister(context.Background(), models.RegisterDeviceRequest{
		DeviceID: "dev-1",
		Metadata: models.DeviceMetadata{Manufacturer: "Google", Model: "Pixel", OSVersion: "14"},
	})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "already registered", got.Message)
}

func TestCheckOrRegister_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("registry unavailable"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CheckOrRegister(context.Background(), models.RegisterDeviceRequest{DeviceID: "dev-1"})
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestCheckOrRegister_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CheckOrRegister(context.Background(), models.RegisterDeviceRequest{DeviceID: "dev-1"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCheckOrRegister_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).CheckOrRegister(context.Background(), models.RegisterDeviceRequest{DeviceID: "dev-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register device request")
}

// ── UpdateDeviceInfo ────────────────────────────────────────────────────────

func TestUpdateDeviceInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, infoPath, r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.NewHasher(testHashKey).HexSum(body), r.Header.Get(hashHeader))

		var req models.DeviceInfoRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "dev-1", req.DeviceID)
		assert.Equal(t, "14", req.Metadata.OSVersion)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateDeviceInfo(context.Background(), models.DeviceInfoRequest{
		DeviceID: "dev-1",
		Metadata: models.DeviceMetadata{OSVersion: "14"},
	})
	require.NoError(t, err)
}

func TestUpdateDeviceInfo_Throttled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateDeviceInfo(context.Background(), models.DeviceInfoRequest{DeviceID: "dev-1"})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
