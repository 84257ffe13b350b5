// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/store"
	"github.com/MKhiriev/go-workers-bot/internal/validators"
	"github.com/MKhiriev/go-workers-bot/models"
)

const (
	commandStart  = "start"
	commandHelp   = "help"
	commandCancel = "cancel"
)

// conversationService is the session driven state machine. The persisted
// session is read on every event and never cached.
//
// Expected failures (validation, remote errors) are turned into specific
// replies inside the flow. Anything else is returned by the flow, answered
// with the generic error text and then returned to the caller for logging.
type conversationService struct {
	credentials       CredentialService
	deploys           DeployService
	sessionRepository store.SessionRepository
	messenger         adapter.Messenger

	maxWorkers int

	logger *logger.Logger
}

func NewConversationService(
	credentials CredentialService,
	deploys DeployService,
	sessionRepository store.SessionRepository,
	messenger adapter.Messenger,
	bot config.Bot,
	logger *logger.Logger,
) ConversationService {
	return &conversationService{
		credentials:       credentials,
		deploys:           deploys,
		sessionRepository: sessionRepository,
		messenger:         messenger,
		maxWorkers:        bot.MaxWorkersPerUser,
		logger:            logger,
	}
}

// ── commands ────────────────────────────────────────────────────────────────

func (c *conversationService) HandleCommand(ctx context.Context, cmd models.Command) error {
	var err error
	switch cmd.Name {
	case commandStart:
		err = c.start(ctx, cmd)
	case commandHelp:
		err = c.send(ctx, cmd.ChatID, app.HelpText, nil)
	case commandCancel:
		err = c.cancel(ctx, cmd)
	default:
		logger.FromContext(ctx).Debug().Str("command", cmd.Name).Msg("ignoring unknown command")
		return nil
	}

	if err != nil {
		c.fail(ctx, cmd.ChatID, err)
		return fmt.Errorf("error handling /%s: %w", cmd.Name, err)
	}
	return nil
}

func (c *conversationService) start(ctx context.Context, cmd models.Command) error {
	user := models.User{
		UserID:    cmd.UserID,
		Username:  cmd.Sender.Username,
		FirstName: cmd.Sender.FirstName,
		LastName:  cmd.Sender.LastName,
	}
	if err := c.credentials.RegisterUser(ctx, user); err != nil {
		return err
	}
	return c.send(ctx, cmd.ChatID, app.AgreementText, agreementKeyboard(cmd.UserID))
}

func (c *conversationService) cancel(ctx context.Context, cmd models.Command) error {
	if err := c.sessionRepository.ClearSession(ctx, cmd.UserID); err != nil {
		return err
	}
	return c.send(ctx, cmd.ChatID, app.CancelledText, mainMenuButtonKeyboard(cmd.UserID))
}

// ── callbacks ───────────────────────────────────────────────────────────────

func (c *conversationService) HandleCallback(ctx context.Context, cb models.Callback) error {
	log := logger.FromContext(ctx)

	if err := c.messenger.AnswerCallback(ctx, cb.ID); err != nil {
		log.Warn().Err(err).Str("func", "conversationService.HandleCallback").Msg("failed to acknowledge callback")
	}

	if err := c.dispatchCallback(ctx, cb); err != nil {
		c.fail(ctx, cb.ChatID, err)
		return fmt.Errorf("error handling callback %q: %w", cb.Data, err)
	}
	return nil
}

func (c *conversationService) dispatchCallback(ctx context.Context, cb models.Callback) error {
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbAgree), strings.HasPrefix(data, cbLogin):
		return c.beginCredentialFlow(ctx, cb)

	case strings.HasPrefix(data, cbDisagree):
		return c.edit(ctx, cb, app.MustAgreeText, backToStartKeyboard(cb.UserID))

	case strings.HasPrefix(data, cbStart):
		return c.edit(ctx, cb, app.AgreementText, agreementKeyboard(cb.UserID))

	case strings.HasPrefix(data, cbMainMenu), strings.HasPrefix(data, cbCancelDelete):
		return c.showMenu(ctx, cb)

	case strings.HasPrefix(data, cbDeployNautika):
		return c.beginDeployFlow(ctx, cb, models.DeployNautikaName{}, app.DeployNautikaPromptText)

	case strings.HasPrefix(data, cbDeployGithub):
		return c.beginDeployFlow(ctx, cb, models.DeployGithubName{}, app.DeployGithubNamePromptText)

	case strings.HasPrefix(data, cbListWorkers):
		return c.listWorkers(ctx, cb)

	case strings.HasPrefix(data, cbDeleteWorker):
		return c.chooseWorkerToDelete(ctx, cb)

	case strings.HasPrefix(data, cbConfirmDelete):
		name, ok := parseTarget(strings.TrimPrefix(data, cbConfirmDelete))
		if !ok {
			return c.ignoreCallback(ctx, cb)
		}
		return c.edit(ctx, cb, app.ConfirmDeleteText(name), confirmDeleteKeyboard(cb.UserID, name))

	case strings.HasPrefix(data, cbDeleteConfirmed):
		name, ok := parseTarget(strings.TrimPrefix(data, cbDeleteConfirmed))
		if !ok {
			return c.ignoreCallback(ctx, cb)
		}
		return c.deleteWorker(ctx, cb, name)

	default:
		return c.ignoreCallback(ctx, cb)
	}
}

func (c *conversationService) ignoreCallback(ctx context.Context, cb models.Callback) error {
	logger.FromContext(ctx).Debug().Str("data", cb.Data).Msg("ignoring unknown callback")
	return nil
}

func (c *conversationService) beginCredentialFlow(ctx context.Context, cb models.Callback) error {
	if err := c.setState(ctx, cb.UserID, models.WaitingToken{}); err != nil {
		return err
	}
	return c.edit(ctx, cb, app.TokenInstructionsText, nil)
}

// showMenu ends any running flow and renders the menu in place of the
// message that carried the button.
func (c *conversationService) showMenu(ctx context.Context, cb models.Callback) error {
	if err := c.sessionRepository.ClearSession(ctx, cb.UserID); err != nil {
		return err
	}

	user, err := c.credentials.GetUser(ctx, cb.UserID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return err
	}
	authenticated := err == nil && user.HasCredential()

	return c.edit(ctx, cb, app.MenuText(authenticated), menuKeyboard(cb.UserID, authenticated))
}

func (c *conversationService) beginDeployFlow(ctx context.Context, cb models.Callback, state models.SessionState, prompt string) error {
	user, ok, err := c.authenticatedUser(ctx, cb.ChatID, cb.UserID)
	if err != nil || !ok {
		return err
	}

	if err = c.deploys.CheckQuota(ctx, user); err != nil {
		if errors.Is(err, ErrWorkerLimitReached) {
			return c.send(ctx, cb.ChatID, app.WorkerLimitText(c.maxWorkers), mainMenuButtonKeyboard(cb.UserID))
		}
		return err
	}

	if err = c.setState(ctx, cb.UserID, state); err != nil {
		return err
	}
	return c.send(ctx, cb.ChatID, prompt, nil)
}

func (c *conversationService) listWorkers(ctx context.Context, cb models.Callback) error {
	user, ok, err := c.authenticatedUser(ctx, cb.ChatID, cb.UserID)
	if err != nil || !ok {
		return err
	}

	if err = c.send(ctx, cb.ChatID, app.FetchingWorkersText, nil); err != nil {
		return err
	}

	listings, err := c.deploys.ListWorkers(ctx, user)
	if err != nil {
		if reason, ok := remoteReason(err); ok {
			return c.send(ctx, cb.ChatID, app.ListFailedText(reason), mainMenuButtonKeyboard(cb.UserID))
		}
		return err
	}

	if len(listings) == 0 {
		return c.send(ctx, cb.ChatID, app.NoWorkersText, mainMenuButtonKeyboard(cb.UserID))
	}
	return c.send(ctx, cb.ChatID, app.WorkerListText(listings), mainMenuButtonKeyboard(cb.UserID))
}

func (c *conversationService) chooseWorkerToDelete(ctx context.Context, cb models.Callback) error {
	user, ok, err := c.authenticatedUser(ctx, cb.ChatID, cb.UserID)
	if err != nil || !ok {
		return err
	}

	if err = c.send(ctx, cb.ChatID, app.FetchingWorkersText, nil); err != nil {
		return err
	}

	listings, err := c.deploys.ListWorkers(ctx, user)
	if err != nil {
		if reason, ok := remoteReason(err); ok {
			return c.send(ctx, cb.ChatID, app.ListFailedText(reason), mainMenuButtonKeyboard(cb.UserID))
		}
		return err
	}

	if len(listings) == 0 {
		return c.send(ctx, cb.ChatID, app.NothingToDeleteText, mainMenuButtonKeyboard(cb.UserID))
	}

	kb, kept, skipped := deleteKeyboard(cb.UserID, listings)
	return c.send(ctx, cb.ChatID, app.DeleteChooseText(kept, skipped), kb)
}

func (c *conversationService) deleteWorker(ctx context.Context, cb models.Callback, name string) error {
	user, ok, err := c.authenticatedUser(ctx, cb.ChatID, cb.UserID)
	if err != nil || !ok {
		return err
	}

	if err = c.deploys.DeleteWorker(ctx, user, name); err != nil {
		if reason, ok := remoteReason(err); ok {
			return c.send(ctx, cb.ChatID, app.DeleteFailedText(reason), mainMenuButtonKeyboard(cb.UserID))
		}
		return err
	}
	return c.send(ctx, cb.ChatID, app.DeleteSuccessText(name), mainMenuButtonKeyboard(cb.UserID))
}

// ── free text ───────────────────────────────────────────────────────────────

func (c *conversationService) HandleMessage(ctx context.Context, msg models.IncomingMessage) error {
	text := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	session, err := c.sessionRepository.GetSession(ctx, msg.UserID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		c.fail(ctx, msg.ChatID, err)
		return fmt.Errorf("error loading session: %w", err)
	}
	if !session.Active() {
		return nil
	}

	switch state := session.State.(type) {
	case models.WaitingToken:
		err = c.acceptToken(ctx, msg, text)
	case models.WaitingAccountID:
		err = c.acceptAccountID(ctx, msg, state.Token, text)
	case models.DeployNautikaName:
		err = c.deployNautika(ctx, msg, text)
	case models.DeployGithubName:
		err = c.acceptGithubName(ctx, msg, text)
	case models.DeployGithubURL:
		err = c.deployGithub(ctx, msg, state.WorkerName, text)
	default:
		err = fmt.Errorf("%w: %T", models.ErrUnknownSessionState, state)
	}

	if err != nil {
		c.fail(ctx, msg.ChatID, err)
		return fmt.Errorf("error handling %s input: %w", session.State.StateName(), err)
	}
	return nil
}

func (c *conversationService) acceptToken(ctx context.Context, msg models.IncomingMessage, token string) error {
	if err := validators.ValidateToken(token); err != nil {
		return c.send(ctx, msg.ChatID, app.TokenTooShortText, nil)
	}

	if err := c.setState(ctx, msg.UserID, models.WaitingAccountID{Token: token}); err != nil {
		return err
	}
	return c.send(ctx, msg.ChatID, app.AccountIDInstructionsText, nil)
}

func (c *conversationService) acceptAccountID(ctx context.Context, msg models.IncomingMessage, token, accountID string) error {
	account, err := c.credentials.Login(ctx, msg.UserID, models.Credential{Token: token, AccountID: accountID})
	if err != nil {
		if errors.Is(err, validators.ErrEmptyAccountID) {
			return c.send(ctx, msg.ChatID, app.AccountIDEmptyText, nil)
		}
		if errors.Is(err, validators.ErrTokenTooShort) {
			if err = c.setState(ctx, msg.UserID, models.WaitingToken{}); err != nil {
				return err
			}
			return c.send(ctx, msg.ChatID, app.TokenTooShortText, nil)
		}
		if reason, ok := remoteReason(err); ok {
			return c.send(ctx, msg.ChatID, app.LoginFailedText(reason), nil)
		}
		return err
	}

	if err = c.sessionRepository.ClearSession(ctx, msg.UserID); err != nil {
		return err
	}
	return c.send(ctx, msg.ChatID, app.LoginSuccessText(account), mainMenuButtonKeyboard(msg.UserID))
}

func (c *conversationService) deployNautika(ctx context.Context, msg models.IncomingMessage, name string) error {
	user, ok, err := c.authenticatedUser(ctx, msg.ChatID, msg.UserID)
	if err != nil || !ok {
		return c.endFlow(ctx, msg.UserID, err)
	}

	if err = c.deploys.CheckNameAvailable(ctx, user, name); err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidWorkerName):
			return c.send(ctx, msg.ChatID, app.InvalidWorkerNameText, nil)
		case errors.Is(err, ErrWorkerExists):
			return c.send(ctx, msg.ChatID, app.WorkerExistsText(name), nil)
		}
		return c.deployFailed(ctx, msg, err, app.DeployFailedText)
	}

	if err = c.send(ctx, msg.ChatID, app.DeployingText, nil); err != nil {
		return err
	}

	worker, err := c.deploys.DeployBuiltin(ctx, user, name)
	if err != nil {
		return c.deployFailed(ctx, msg, err, app.DeployFailedText)
	}

	if err = c.sessionRepository.ClearSession(ctx, msg.UserID); err != nil {
		return err
	}
	return c.send(ctx, msg.ChatID, app.DeploySuccessText(worker), mainMenuButtonKeyboard(msg.UserID))
}

func (c *conversationService) acceptGithubName(ctx context.Context, msg models.IncomingMessage, name string) error {
	if err := validators.ValidateWorkerName(name); err != nil {
		return c.send(ctx, msg.ChatID, app.InvalidWorkerNameText, nil)
	}

	if err := c.setState(ctx, msg.UserID, models.DeployGithubURL{WorkerName: name}); err != nil {
		return err
	}
	return c.send(ctx, msg.ChatID, app.GithubURLPromptText(name), nil)
}

func (c *conversationService) deployGithub(ctx context.Context, msg models.IncomingMessage, name, rawURL string) error {
	repo, err := validators.ParseRepoURL(rawURL)
	if err != nil {
		return c.send(ctx, msg.ChatID, app.InvalidRepoURLText, nil)
	}

	user, ok, err := c.authenticatedUser(ctx, msg.ChatID, msg.UserID)
	if err != nil || !ok {
		return c.endFlow(ctx, msg.UserID, err)
	}

	if err = c.send(ctx, msg.ChatID, app.CloningText, nil); err != nil {
		return err
	}

	worker, err := c.deploys.DeployFromGitHub(ctx, user, name, repo)
	if err != nil {
		if errors.Is(err, ErrFetchingScript) {
			return c.deployFailed(ctx, msg, err, app.FetchScriptFailedText)
		}
		return c.deployFailed(ctx, msg, err, app.DeployFailedText)
	}

	if err = c.sessionRepository.ClearSession(ctx, msg.UserID); err != nil {
		return err
	}
	return c.send(ctx, msg.ChatID, app.GithubDeploySuccessText(worker, repo), mainMenuButtonKeyboard(msg.UserID))
}

// deployFailed ends a deploy flow after a terminal failure. Remote failures
// are reported with their message through render; other errors are returned
// for the generic reply.
func (c *conversationService) deployFailed(ctx context.Context, msg models.IncomingMessage, cause error, render func(string) string) error {
	if err := c.sessionRepository.ClearSession(ctx, msg.UserID); err != nil {
		return errors.Join(cause, err)
	}

	reason, ok := remoteReason(cause)
	if !ok {
		return cause
	}
	return c.send(ctx, msg.ChatID, render(reason), mainMenuButtonKeyboard(msg.UserID))
}

// endFlow clears the session of a flow that cannot continue and passes err
// through.
func (c *conversationService) endFlow(ctx context.Context, userID int64, err error) error {
	if clearErr := c.sessionRepository.ClearSession(ctx, userID); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	return err
}

// ── helpers ─────────────────────────────────────────────────────────────────

// authenticatedUser loads the profile of userID. When the user has no stored
// credential the "must log in" reply is sent and ok is false.
func (c *conversationService) authenticatedUser(ctx context.Context, chatID, userID int64) (models.User, bool, error) {
	user, err := c.credentials.GetUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, false, err
	}
	if err != nil || !user.HasCredential() {
		return models.User{}, false, c.send(ctx, chatID, app.MustLoginText, nil)
	}
	return user, true, nil
}

func (c *conversationService) setState(ctx context.Context, userID int64, state models.SessionState) error {
	return c.sessionRepository.SetSession(ctx, models.Session{UserID: userID, State: state})
}

func (c *conversationService) send(ctx context.Context, chatID int64, text string, kb *models.InlineKeyboard) error {
	return c.messenger.SendMessage(ctx, models.OutgoingMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
		Keyboard:  kb,
	})
}

// edit replaces the message that carried the pressed button. Callbacks from
// inline messages carry no message id and get a new message instead.
func (c *conversationService) edit(ctx context.Context, cb models.Callback, text string, kb *models.InlineKeyboard) error {
	if cb.MessageID == 0 {
		return c.send(ctx, cb.ChatID, text, kb)
	}
	return c.messenger.EditMessage(ctx, models.MessageEdit{
		ChatID:    cb.ChatID,
		MessageID: cb.MessageID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
		Keyboard:  kb,
	})
}

// fail answers an unexpected error with the generic text.
func (c *conversationService) fail(ctx context.Context, chatID int64, cause error) {
	log := logger.FromContext(ctx)
	log.Err(cause).Str("func", "conversationService.fail").Msg("unexpected error while handling event")

	if err := c.messenger.SendMessage(ctx, models.OutgoingMessage{ChatID: chatID, Text: app.GenericErrorText}); err != nil {
		log.Err(err).Str("func", "conversationService.fail").Msg("failed to send error reply")
	}
}

func remoteReason(err error) (string, bool) {
	var remote *adapter.RemoteError
	if !errors.As(err, &remote) {
		return "", false
	}
	return remote.Message, true
}
