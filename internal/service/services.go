package service

import (
	"github.com/MKhiriev/go-trip-journal/internal/config"
	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/storage"
	"github.com/MKhiriev/go-trip-journal/internal/store"
)

type Services struct {
	AuthService    AuthService
	TripService    TripService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, objectStorage storage.ObjectStorage, cleanup ImageCleanupQueue, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		TripService:    NewTripService(storages.TripRepository, objectStorage, cleanup, logger),
		AppInfoService: appInfoService,
	}, nil
}
