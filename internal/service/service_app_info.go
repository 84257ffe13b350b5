package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

const (
	botName  = "Cloudflare Workers Bot"
	statusOK = "OK"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports the process uptime in seconds.
func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	now := s.now()
	return models.HealthStatus{
		Status:    statusOK,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.startedAt).Seconds(),
	}
}

func (s *appInfoService) Status(ctx context.Context) models.BotStatus {
	return models.BotStatus{
		Bot:       botName + " is running",
		Version:   s.appVersion,
		Timestamp: s.now().UTC(),
	}
}
