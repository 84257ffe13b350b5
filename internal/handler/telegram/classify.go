package telegram

import (
	"strings"

	"github.com/MKhiriev/go-workers-bot/models"
)

// parseCommand extracts the command name from text such as "/start" or
// "/start@WorkersBot payload". Arguments are ignored.
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}

	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	if name == "" {
		return "", false
	}

	return name, true
}

func commandFrom(name string, msg *models.TelegramMessage) models.Command {
	return models.Command{
		Name:   name,
		ChatID: msg.Chat.ID,
		UserID: msg.From.ID,
		Sender: models.Sender{
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		},
	}
}

func messageFrom(msg *models.TelegramMessage) models.IncomingMessage {
	return models.IncomingMessage{
		Text:   msg.Text,
		ChatID: msg.Chat.ID,
		UserID: msg.From.ID,
	}
}

// callbackFrom falls back to the sender's private chat when the pressed
// button belongs to an inline message, which carries no chat.
func callbackFrom(q *models.CallbackQuery) models.Callback {
	cb := models.Callback{
		ID:     q.ID,
		Data:   q.Data,
		ChatID: q.From.ID,
		UserID: q.From.ID,
	}
	if q.Message != nil {
		cb.ChatID = q.Message.Chat.ID
		cb.MessageID = q.Message.MessageID
	}

	return cb
}

// chatOf returns the chat an error reply for update should go to, or 0.
func chatOf(update models.Update) int64 {
	switch {
	case update.CallbackQuery != nil:
		return callbackFrom(update.CallbackQuery).ChatID
	case update.Message != nil:
		return update.Message.Chat.ID
	default:
		return 0
	}
}
