// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/service"
	"github.com/MKhiriev/go-trip-journal/models"
)

// ─────────────────────────────────────────────
// Mock: service.TripService
// ─────────────────────────────────────────────

type mockTripSvc struct {
	createTripFn     func(ctx context.Context, userID string, payload models.TripPayload) (models.TripCreated, error)
	deleteTripFn     func(ctx context.Context, userID, tripID string) (*models.Trip, error)
	getUserTripsFn   func(ctx context.Context, userID string) ([]models.Trip, error)
	getPublicTripsFn func(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error)
	updateTripFn     func(ctx context.Context, userID, tripID string, payload models.TripPayload) (models.TripUpdated, error)
	newUploadURLFn   func(ctx context.Context, contentType string) (models.UploadCredential, error)
}

func (m *mockTripSvc) CreateTrip(ctx context.Context, userID string, payload models.TripPayload) (models.TripCreated, error) {
	if m.createTripFn != nil {
		return m.createTripFn(ctx, userID, payload)
	}
	return models.TripCreated{}, nil
}

func (m *mockTripSvc) DeleteTrip(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	if m.deleteTripFn != nil {
		return m.deleteTripFn(ctx, userID, tripID)
	}
	return nil, nil
}

func (m *mockTripSvc) GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	if m.getUserTripsFn != nil {
		return m.getUserTripsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTripSvc) GetPublicTrips(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error) {
	if m.getPublicTripsFn != nil {
		return m.getPublicTripsFn(ctx, cursor)
	}
	return nil, nil
}

func (m *mockTripSvc) UpdateTrip(ctx context.Context, userID, tripID string, payload models.TripPayload) (models.TripUpdated, error) {
	if m.updateTripFn != nil {
		return m.updateTripFn(ctx, userID, tripID, payload)
	}
	return models.TripUpdated{}, nil
}

func (m *mockTripSvc) NewUploadURL(ctx context.Context, contentType string) (models.UploadCredential, error) {
	if m.newUploadURLFn != nil {
		return m.newUploadURLFn(ctx, contentType)
	}
	return models.UploadCredential{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthSvc struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthSvc) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: "auth0|user-1"}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(ctx context.Context) string {
	if m.version != "" {
		return m.version
	}
	return "0.0.0"
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks. Nil mocks are
// replaced with permissive defaults.
func newTestHandler(t *testing.T, tripSvc service.TripService, authSvc service.AuthService) *Handler {
	t.Helper()

	if tripSvc == nil {
		tripSvc = &mockTripSvc{}
	}
	if authSvc == nil {
		authSvc = &mockAuthSvc{}
	}

	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    authSvc,
			TripService:    tripSvc,
			AppInfoService: &mockAppInfoSvc{version: "1.2.3"},
		},
	}
}

// newTestRouter returns the fully wired chi router for end-to-end route
// tests, including the auth middleware.
func newTestRouter(t *testing.T, tripSvc service.TripService, authSvc service.AuthService) http.Handler {
	t.Helper()
	return newTestHandler(t, tripSvc, authSvc).Init()
}
