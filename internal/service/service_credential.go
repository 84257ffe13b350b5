package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/store"
	"github.com/MKhiriev/go-workers-bot/internal/validators"
	"github.com/MKhiriev/go-workers-bot/models"
)

type credentialService struct {
	userRepository store.UserRepository
	cloudflare     adapter.CloudflareAdapterFactory
	validator      validators.Validator

	logger *logger.Logger
}

func NewCredentialService(userRepository store.UserRepository, cloudflare adapter.CloudflareAdapterFactory, logger *logger.Logger) CredentialService {
	return &credentialService{
		userRepository: userRepository,
		cloudflare:     cloudflare,
		validator:      validators.NewInputValidator(),
		logger:         logger,
	}
}

func (c *credentialService) RegisterUser(ctx context.Context, user models.User) error {
	user.IsActive = true
	if err := c.userRepository.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("error registering user: %w", err)
	}
	return nil
}

func (c *credentialService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return c.userRepository.GetUser(ctx, userID)
}

func (c *credentialService) Login(ctx context.Context, userID int64, credential models.Credential) (models.Account, error) {
	log := logger.FromContext(ctx)

	credential = credential.Normalize()
	if err := c.validator.Validate(ctx, credential); err != nil {
		return models.Account{}, err
	}

	account, err := c.cloudflare.ForCredential(credential).VerifyCredential(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "credentialService.Login").Msg("credential rejected by remote platform")
		return models.Account{}, err
	}

	if err = c.userRepository.SetCredential(ctx, userID, credential); err != nil {
		return models.Account{}, fmt.Errorf("error storing credential: %w", err)
	}

	log.Info().Str("func", "credentialService.Login").Str("account_id", account.ID).Msg("credential stored")
	return account, nil
}
