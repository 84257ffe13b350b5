package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
)

// pollSlack is added to the long-polling timeout so that the HTTP client
// never gives up before the Bot API answers an empty poll.
const pollSlack = 10 * time.Second

type telegramEnvelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

type sendMessageRequest struct {
	ChatID      int64                  `json:"chat_id"`
	Text        string                 `json:"text"`
	ParseMode   models.ParseMode       `json:"parse_mode,omitempty"`
	ReplyMarkup *models.InlineKeyboard `json:"reply_markup,omitempty"`
}

type editMessageRequest struct {
	ChatID      int64                  `json:"chat_id"`
	MessageID   int64                  `json:"message_id"`
	Text        string                 `json:"text"`
	ParseMode   models.ParseMode       `json:"parse_mode,omitempty"`
	ReplyMarkup *models.InlineKeyboard `json:"reply_markup,omitempty"`
}

type answerCallbackRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates"`
}

type setWebhookRequest struct {
	URL            string   `json:"url"`
	AllowedUpdates []string `json:"allowed_updates"`
}

var allowedUpdates = []string{"message", "callback_query"}

type telegramAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewTelegramAdapter constructs the Bot API client for cfg.BotToken. Every
// method is POSTed as JSON to {APIURL}/bot{token}/{method}.
func NewTelegramAdapter(cfg config.Telegram, log *logger.Logger) (TelegramAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid telegram api url: %w", err)
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL+"/bot"+cfg.BotToken),
		utils.WithTimeout(cfg.PollTimeout+pollSlack),
		utils.WithHeader("Content-Type", "application/json"),
	)

	return &telegramAdapter{client: client, logger: log}, nil
}

func (t *telegramAdapter) SendMessage(ctx context.Context, msg models.OutgoingMessage) error {
	return t.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      msg.ChatID,
		Text:        msg.Text,
		ParseMode:   msg.ParseMode,
		ReplyMarkup: msg.Keyboard,
	}, nil)
}

func (t *telegramAdapter) EditMessage(ctx context.Context, edit models.MessageEdit) error {
	err := t.call(ctx, "editMessageText", editMessageRequest{
		ChatID:      edit.ChatID,
		MessageID:   edit.MessageID,
		Text:        edit.Text,
		ParseMode:   edit.ParseMode,
		ReplyMarkup: edit.Keyboard,
	}, nil)
	if err != nil && strings.Contains(RemoteMessage(err), "message is not modified") {
		return nil
	}
	return err
}

func (t *telegramAdapter) AnswerCallback(ctx context.Context, callbackID string) error {
	return t.call(ctx, "answerCallbackQuery", answerCallbackRequest{CallbackQueryID: callbackID}, nil)
}

func (t *telegramAdapter) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error) {
	updates := make([]models.Update, 0)
	err := t.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: allowedUpdates,
	}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

func (t *telegramAdapter) SetWebhook(ctx context.Context, webhookURL string) error {
	return t.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL, AllowedUpdates: allowedUpdates}, nil)
}

func (t *telegramAdapter) DeleteWebhook(ctx context.Context) error {
	return t.call(ctx, "deleteWebhook", struct{}{}, nil)
}

// call POSTs body to method and decodes the result into out (when non-nil).
func (t *telegramAdapter) call(ctx context.Context, method string, body any, out any) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/" + method)
	if err != nil {
		// resty errors embed the request URL, which carries the bot token
		return mapTransportError(fmt.Errorf("telegram %s: %w", method, stripURLError(err)))
	}
	if err = mapHTTPError(resp, telegramErrorMessage); err != nil {
		t.logger.Debug().Str("func", "*telegramAdapter.call").Str("method", method).
			Int("status", resp.StatusCode()).Msg(RemoteMessage(err))
		return err
	}

	var env telegramEnvelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode(), Message: "unexpected response from Telegram", Err: fmt.Errorf("%w: %w", ErrDecodingPayload, err)}
	}
	if !env.OK {
		return &RemoteError{StatusCode: env.ErrorCode, Message: env.Description, Err: statusSentinel(env.ErrorCode)}
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(env.Result, out); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode(), Message: "unexpected response from Telegram", Err: fmt.Errorf("%w: %w", ErrDecodingPayload, err)}
	}
	return nil
}

// stripURLError drops the *url.Error wrapper so the request URL does not end
// up in logs or user-facing text.
func stripURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
