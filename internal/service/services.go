package service

import (
	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/store"
)

// Adapters groups the remote collaborators the services depend on.
type Adapters struct {
	Cloudflare adapter.CloudflareAdapterFactory
	Scripts    adapter.ScriptFetcher
	Messenger  adapter.Messenger
}

type Services struct {
	CredentialService   CredentialService
	DeployService       DeployService
	ConversationService ConversationService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialService(storages.UserRepository, adapters.Cloudflare, logger)
	deploys := NewDeployService(storages.WorkerRepository, adapters.Cloudflare, adapters.Scripts, cfg.Bot, cfg.Cloudflare, logger)

	return &Services{
		CredentialService:   credentials,
		DeployService:       deploys,
		ConversationService: NewConversationService(credentials, deploys, storages.SessionRepository, adapters.Messenger, cfg.Bot, logger),
		AppInfoService:      appInfo,
	}, nil
}
