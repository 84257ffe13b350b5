// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ParseMode selects how the chat client renders message text.
type ParseMode string

const (
	ParseModeNone     ParseMode = ""
	ParseModeMarkdown ParseMode = "Markdown"
)

// Sender carries the identity fields copied into the profile on /start.
type Sender struct {
	Username  string
	FirstName string
	LastName  string
}

// Command is an inbound slash command such as /start. Name is stored without
// the leading slash and without any @botname suffix.
type Command struct {
	Name   string
	ChatID int64
	UserID int64
	Sender Sender
}

// Callback is an inbound button press.
type Callback struct {
	ID        string
	Data      string
	ChatID    int64
	UserID    int64
	MessageID int64
}

// IncomingMessage is inbound free text.
type IncomingMessage struct {
	Text   string
	ChatID int64
	UserID int64
}

// InlineButton is one button of an inline keyboard.
type InlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// InlineKeyboard is the reply markup attached to a message.
type InlineKeyboard struct {
	Rows [][]InlineButton `json:"inline_keyboard"`
}

// NewInlineKeyboard builds a keyboard from rows of buttons.
func NewInlineKeyboard(rows ...[]InlineButton) *InlineKeyboard {
	return &InlineKeyboard{Rows: rows}
}

// OutgoingMessage is a new message sent to a chat.
type OutgoingMessage struct {
	ChatID    int64
	Text      string
	ParseMode ParseMode
	Keyboard  *InlineKeyboard
}

// MessageEdit replaces the text and keyboard of a message sent earlier.
type MessageEdit struct {
	ChatID    int64
	MessageID int64
	Text      string
	ParseMode ParseMode
	Keyboard  *InlineKeyboard
}
