// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/store"
	"github.com/MKhiriev/go-workers-bot/internal/validators"
	"github.com/MKhiriev/go-workers-bot/models"
)

//go:embed scripts/nautika.js
var nautikaScript string

type deployService struct {
	workerRepository store.WorkerRepository
	cloudflare       adapter.CloudflareAdapterFactory
	fetcher          adapter.ScriptFetcher
	validator        validators.Validator

	bot      config.Bot
	bindings []models.Binding
	builtin  string

	logger *logger.Logger
}

func NewDeployService(
	workerRepository store.WorkerRepository,
	cloudflare adapter.CloudflareAdapterFactory,
	fetcher adapter.ScriptFetcher,
	bot config.Bot,
	cf config.Cloudflare,
	logger *logger.Logger,
) DeployService {
	return &deployService{
		workerRepository: workerRepository,
		cloudflare:       cloudflare,
		fetcher:          fetcher,
		validator:        validators.NewInputValidator(),
		bot:              bot,
		bindings:         models.BindingsFromConfig(cf.WorkerVars, cf.KVNamespaces),
		builtin:          nautikaScript,
		logger:           logger,
	}
}

// CheckQuota counts the local records only. Scripts created outside the bot
// do not count against the limit.
func (d *deployService) CheckQuota(ctx context.Context, user models.User) error {
	if d.bot.MaxWorkersPerUser < 0 || d.bot.IsPrivileged(user.UserID) {
		return nil
	}

	workers, err := d.workerRepository.ListWorkers(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("error counting workers: %w", err)
	}
	if len(workers) >= d.bot.MaxWorkersPerUser {
		return ErrWorkerLimitReached
	}
	return nil
}

func (d *deployService) CheckNameAvailable(ctx context.Context, user models.User, name string) error {
	if err := d.validator.Validate(ctx, name, validators.FieldWorkerName); err != nil {
		return err
	}
	if !user.HasCredential() {
		return ErrNotAuthenticated
	}

	_, err := d.cloudflare.ForCredential(user.Credential()).GetScript(ctx, name)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrWorkerExists, name)
	case errors.Is(err, adapter.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (d *deployService) DeployBuiltin(ctx context.Context, user models.User, name string) (models.Worker, error) {
	if strings.TrimSpace(d.builtin) == "" {
		return models.Worker{}, ErrNoBuiltinScript
	}
	return d.deploy(ctx, user, name, d.builtin)
}

func (d *deployService) DeployFromGitHub(ctx context.Context, user models.User, name string, repo models.GitHubRepo) (models.Worker, error) {
	if !user.HasCredential() {
		return models.Worker{}, ErrNotAuthenticated
	}

	content, err := d.fetcher.FetchScript(ctx, repo)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "deployService.DeployFromGitHub").
			Str("repo", repo.String()).
			Msg("failed to fetch script")
		return models.Worker{}, fmt.Errorf("%w: %w", ErrFetchingScript, err)
	}

	return d.deploy(ctx, user, name, content)
}

func (d *deployService) deploy(ctx context.Context, user models.User, name, content string) (models.Worker, error) {
	log := logger.FromContext(ctx)

	if !user.HasCredential() {
		return models.Worker{}, ErrNotAuthenticated
	}

	upload := models.ScriptUpload{Name: name, Content: content, Bindings: d.bindings}
	if err := d.validator.Validate(ctx, upload); err != nil {
		return models.Worker{}, err
	}

	deployment, err := d.cloudflare.ForCredential(user.Credential()).DeployScript(ctx, upload)
	if err != nil {
		log.Warn().Err(err).Str("func", "deployService.deploy").Str("worker", name).Msg("remote deploy failed")
		return models.Worker{}, err
	}

	worker := models.Worker{
		UserID:        user.UserID,
		Name:          name,
		URL:           deployment.URL,
		Subdomain:     name,
		ScriptContent: content,
	}

	id, err := d.workerRepository.CreateWorker(ctx, worker)
	if err != nil {
		log.Err(err).Str("func", "deployService.deploy").Str("worker", name).Msg("script deployed but the local record was not saved")
		return models.Worker{}, fmt.Errorf("error saving worker record: %w", err)
	}
	worker.ID = id

	log.Info().Str("func", "deployService.deploy").Str("worker", name).Str("url", worker.URL).Msg("worker deployed")
	return worker, nil
}

func (d *deployService) ListWorkers(ctx context.Context, user models.User) ([]models.WorkerListing, error) {
	if !user.HasCredential() {
		return nil, ErrNotAuthenticated
	}

	scripts, err := d.cloudflare.ForCredential(user.Credential()).ListScripts(ctx)
	if err != nil {
		return nil, err
	}

	deployed := make(map[string]struct{})
	records, err := d.workerRepository.ListWorkers(ctx, user.UserID)
	if err != nil {
		// the remote list is still usable without the marks
		logger.FromContext(ctx).Warn().Err(err).Str("func", "deployService.ListWorkers").Msg("failed to load local worker records")
	}
	for _, record := range records {
		deployed[record.Name] = struct{}{}
	}

	listings := make([]models.WorkerListing, 0, len(scripts))
	for _, script := range scripts {
		_, ok := deployed[script.ID]
		listings = append(listings, models.WorkerListing{
			Script:        script,
			URL:           models.WorkerURL(script.ID, user.CloudflareAccountID),
			DeployedByBot: ok,
		})
	}
	return listings, nil
}

func (d *deployService) DeleteWorker(ctx context.Context, user models.User, name string) error {
	if !user.HasCredential() {
		return ErrNotAuthenticated
	}

	if err := d.cloudflare.ForCredential(user.Credential()).DeleteScript(ctx, name); err != nil {
		return err
	}

	removed, err := d.workerRepository.DeleteWorkerByName(ctx, user.UserID, name)
	if err != nil {
		return fmt.Errorf("error deleting worker record: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "deployService.DeleteWorker").
		Str("worker", name).
		Int64("records_removed", removed).
		Msg("worker deleted")
	return nil
}
