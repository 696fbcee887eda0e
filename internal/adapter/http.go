// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/utils"
	"github.com/MKhiriev/device-sync-gate/models"
	"github.com/go-resty/resty/v2"
)

const (
	policyPath   = "/api/sync/policy"
	registerPath = "/api/devices/register"
	infoPath     = "/api/devices/info"

	// hashHeader carries the HMAC-SHA256 of the request body.
	hashHeader = "HashSHA256"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress,
// applies the request timeout and keys the body signer with appCfg.HashKey.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. A full "Bearer <token>" header value
// is accepted as well as the bare token.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if bare, err := utils.ParseBearerToken(token); err == nil {
		token = bare
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UserSubject implements [ServerAdapter]. An unparsable token yields "" and
// a warning; the policy is then requested device-wide.
func (h *httpServerAdapter) UserSubject() string {
	token := h.Token()
	if token == "" {
		return ""
	}

	sub, err := utils.TokenSubject(token)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.UserSubject").
			Msg("bearer token carries no usable subject")
		return ""
	}

	return sub
}

// FetchPolicy implements [ServerAdapter]. It POSTs req to
// POST /api/sync/policy and decodes the [models.PolicyResponse].
func (h *httpServerAdapter) FetchPolicy(ctx context.Context, req models.PolicyRequest) (models.PolicyResponse, error) {
	req.UserSubject = strings.TrimSpace(req.UserSubject)

	resp, err := h.signedRequest(ctx, req).Post(policyPath)
	if err != nil {
		return models.PolicyResponse{}, fmt.Errorf("fetch policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PolicyResponse{}, err
	}

	var policy models.PolicyResponse
	if err = json.Unmarshal(resp.Body(), &policy); err != nil {
		return models.PolicyResponse{}, fmt.Errorf("%w: decode policy response: %w", ErrMalformedResponse, err)
	}

	return policy, nil
}

// CheckOrRegister implements [ServerAdapter]. It POSTs req to
// POST /api/devices/register.
func (h *httpServerAdapter) CheckOrRegister(ctx context.Context, req models.RegisterDeviceRequest) (models.RegisterDeviceResponse, error) {
	resp, err := h.signedRequest(ctx, req).Post(registerPath)
	if err != nil {
		return models.RegisterDeviceResponse{}, fmt.Errorf("register device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterDeviceResponse{}, err
	}

	var result models.RegisterDeviceResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RegisterDeviceResponse{}, fmt.Errorf("%w: decode register response: %w", ErrMalformedResponse, err)
	}

	return result, nil
}

// UpdateDeviceInfo implements [ServerAdapter]. It POSTs req to
// POST /api/devices/info.
func (h *httpServerAdapter) UpdateDeviceInfo(ctx context.Context, req models.DeviceInfoRequest) error {
	resp, err := h.signedRequest(ctx, req).Post(infoPath)
	if err != nil {
		return fmt.Errorf("update device info request: %w", err)
	}
	return mapHTTPError(resp)
}

// signedRequest prepares an authenticated JSON request whose body is
// marshalled once so the integrity hash covers exactly the bytes sent.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		// request DTOs always marshal; keep resty encoding as a fallback
		return req.SetBody(body)
	}

	return req.
		SetHeader(hashHeader, h.hasher.HexSum(payload)).
		SetBody(payload)
}
