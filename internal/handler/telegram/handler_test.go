// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telegram

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/mock"
	"github.com/MKhiriev/go-workers-bot/internal/service"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockConversationService, *mock.MockMessenger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	conv := mock.NewMockConversationService(ctrl)
	messenger := mock.NewMockMessenger(ctrl)

	services := &service.Services{ConversationService: conv}
	h := NewHandler(services, messenger, config.Server{EventTimeout: 5 * time.Second}, logger.Nop())
	return h, conv, messenger
}

func textUpdate(userID int64, text string) models.Update {
	return models.Update{
		UpdateID: 1,
		Message: &models.TelegramMessage{
			MessageID: 10,
			From:      &models.TelegramUser{ID: userID, Username: "ada", FirstName: "Ada", LastName: "Lovelace"},
			Chat:      models.Chat{ID: userID + 1000, Type: "private"},
			Text:      text,
		},
	}
}

// ── Classification ───────────────────────────────────────────────────────────

func TestHandleUpdate_Command(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	conv.EXPECT().HandleCommand(gomock.Any(), models.Command{
		Name:   "start",
		ChatID: 1042,
		UserID: 42,
		Sender: models.Sender{Username: "ada", FirstName: "Ada", LastName: "Lovelace"},
	}).Return(nil)

	h.HandleUpdate(context.Background(), textUpdate(42, "/start@WorkersBot ref123"))
	h.Wait()
}

func TestHandleUpdate_Text(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "my-worker", ChatID: 1042, UserID: 42}).Return(nil)

	h.HandleUpdate(context.Background(), textUpdate(42, "my-worker"))
	h.Wait()
}

func TestHandleUpdate_Callback(t *testing.T) {
	tests := []struct {
		name  string
		query *models.CallbackQuery
		want  models.Callback
	}{
		{
			name: "chat message",
			query: &models.CallbackQuery{
				ID:      "cb-1",
				From:    models.TelegramUser{ID: 42},
				Message: &models.TelegramMessage{MessageID: 77, Chat: models.Chat{ID: -500}},
				Data:    "main_menu_42",
			},
			want: models.Callback{ID: "cb-1", Data: "main_menu_42", ChatID: -500, UserID: 42, MessageID: 77},
		},
		{
			name:  "inline message",
			query: &models.CallbackQuery{ID: "cb-2", From: models.TelegramUser{ID: 42}, Data: "agree_42"},
			want:  models.Callback{ID: "cb-2", Data: "agree_42", ChatID: 42, UserID: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, conv, _ := newTestHandler(t)
			conv.EXPECT().HandleCallback(gomock.Any(), tt.want).Return(nil)

			h.HandleUpdate(context.Background(), models.Update{UpdateID: 2, CallbackQuery: tt.query})
			h.Wait()
		})
	}
}

func TestHandleUpdate_IgnoresUpdatesWithoutTextOrCallback(t *testing.T) {
	h, _, _ := newTestHandler(t)

	h.HandleUpdate(context.Background(), models.Update{UpdateID: 3})
	h.HandleUpdate(context.Background(), textUpdate(42, ""))
	h.HandleUpdate(context.Background(), models.Update{UpdateID: 4, Message: &models.TelegramMessage{Text: "no sender"}})
	h.Wait()
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		name string
		ok   bool
	}{
		{text: "/start", name: "start", ok: true},
		{text: "/help@WorkersBot", name: "help", ok: true},
		{text: "/cancel now", name: "cancel", ok: true},
		{text: "/", ok: false},
		{text: "/@WorkersBot", ok: false},
		{text: "start", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name, ok := parseCommand(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

// ── Failure handling ─────────────────────────────────────────────────────────

func TestHandleUpdate_ServiceErrorIsOnlyLogged(t *testing.T) {
	h, conv, _ := newTestHandler(t)
	conv.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
	// no SendMessage expected: the conversation service already replied

	h.HandleUpdate(context.Background(), textUpdate(42, "hello"))
	h.Wait()
}

func TestHandleUpdate_PanicSendsGenericError(t *testing.T) {
	h, conv, messenger := newTestHandler(t)

	gomock.InOrder(
		conv.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, models.IncomingMessage) error { panic("nil map write") },
		),
		messenger.EXPECT().SendMessage(gomock.Any(), models.OutgoingMessage{ChatID: 1042, Text: app.GenericErrorText}).Return(nil),
		conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "again", ChatID: 1042, UserID: 42}).Return(nil),
	)

	h.HandleUpdate(context.Background(), textUpdate(42, "hello"))
	h.HandleUpdate(context.Background(), textUpdate(42, "again"))
	h.Wait()

	assert.Zero(t, h.queues.size(), "queue must be released after a panic")
}

// ── Context ──────────────────────────────────────────────────────────────────

func TestHandleUpdate_ContextOutlivesParent(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	parent, cancel := context.WithCancel(utils.WithTraceID(context.Background(), "trace-1"))
	cancel()

	conv.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.IncomingMessage) error {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "trace-1", traceID)
			return nil
		},
	)

	h.HandleUpdate(parent, textUpdate(42, "hello"))
	h.Wait()
}

func TestHandleUpdate_GeneratesTraceID(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	conv.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.IncomingMessage) error {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, traceID)
			return nil
		},
	)

	h.HandleUpdate(context.Background(), textUpdate(42, "hello"))
	h.Wait()
}

// ── Serialization ────────────────────────────────────────────────────────────

func TestHandleUpdate_KeepsArrivalOrderForOneUser(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	const n = 200
	var (
		mu       sync.Mutex
		order    []string
		inFlight int32
	)

	conv.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.IncomingMessage) error {
			if atomic.AddInt32(&inFlight, 1) != 1 {
				t.Errorf("update %q overlapped another update of the same user", m.Text)
			}
			defer atomic.AddInt32(&inFlight, -1)

			mu.Lock()
			order = append(order, m.Text)
			mu.Unlock()
			return nil
		},
	).Times(n)

	want := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text := strconv.Itoa(i)
		want = append(want, text)
		h.HandleUpdate(context.Background(), textUpdate(42, text))
	}
	h.Wait()

	assert.Equal(t, want, order)
	assert.Zero(t, h.queues.size())
}

func TestHandleUpdate_TokenThenAccountID(t *testing.T) {
	for run := 0; run < 50; run++ {
		h, conv, _ := newTestHandler(t)

		gomock.InOrder(
			conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "token-aaaaaaaaaaaaaaaa", ChatID: 1042, UserID: 42}).Return(nil),
			conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "abc123", ChatID: 1042, UserID: 42}).Return(nil),
		)

		h.HandleUpdate(context.Background(), textUpdate(42, "token-aaaaaaaaaaaaaaaa"))
		h.HandleUpdate(context.Background(), textUpdate(42, "abc123"))
		h.Wait()
	}
}

func TestHandleUpdate_DifferentUsersRunConcurrently(t *testing.T) {
	h, conv, _ := newTestHandler(t)

	release := make(chan struct{})
	conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "slow", ChatID: 1001, UserID: 1}).DoAndReturn(
		func(context.Context, models.IncomingMessage) error {
			<-release
			return nil
		},
	)
	conv.EXPECT().HandleMessage(gomock.Any(), models.IncomingMessage{Text: "fast", ChatID: 1002, UserID: 2}).DoAndReturn(
		func(context.Context, models.IncomingMessage) error {
			close(release)
			return nil
		},
	)

	h.HandleUpdate(context.Background(), textUpdate(1, "slow"))
	h.HandleUpdate(context.Background(), textUpdate(2, "fast"))

	done := make(chan struct{})
	go func() {
		h.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "updates of different users blocked each other")
	}
}
