package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/MKhiriev/go-workers-bot/models"
)

// Callback data prefixes. Every button carries "<prefix><userID>" so that the
// data stays compatible with keyboards sent by earlier deployments; the user
// id in the data is informational and the sender of the callback is used
// instead.
const (
	cbAgree           = "agree_"
	cbDisagree        = "disagree_"
	cbStart           = "start_"
	cbLogin           = "login_"
	cbMainMenu        = "main_menu_"
	cbDeployNautika   = "deploy_nautika_"
	cbDeployGithub    = "deploy_github_"
	cbListWorkers     = "list_workers_"
	cbDeleteWorker    = "delete_worker_"
	cbConfirmDelete   = "confirm_delete_"
	cbDeleteConfirmed = "delete_confirmed_"
	cbCancelDelete    = "cancel_delete_"
)

// maxCallbackDataLen is the Bot API limit for callback_data in bytes.
const maxCallbackDataLen = 64

func callbackData(prefix string, userID int64) string {
	return prefix + strconv.FormatInt(userID, 10)
}

// targetCallbackData builds "<prefix><userID>_<name>".
func targetCallbackData(prefix string, userID int64, name string) string {
	return callbackData(prefix, userID) + "_" + name
}

// parseTarget extracts the worker name from the part of a callback that
// follows its prefix. The split happens at the first underscore, so names
// containing underscores survive.
func parseTarget(rest string) (string, bool) {
	_, name, ok := strings.Cut(rest, "_")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func button(text, prefix string, userID int64) models.InlineButton {
	return models.InlineButton{Text: text, CallbackData: callbackData(prefix, userID)}
}

func agreementKeyboard(userID int64) *models.InlineKeyboard {
	return models.NewInlineKeyboard([]models.InlineButton{
		button(app.BtnAgree, cbAgree, userID),
		button(app.BtnDisagree, cbDisagree, userID),
	})
}

func backToStartKeyboard(userID int64) *models.InlineKeyboard {
	return models.NewInlineKeyboard([]models.InlineButton{button(app.BtnBackToStart, cbStart, userID)})
}

func mainMenuButtonKeyboard(userID int64) *models.InlineKeyboard {
	return models.NewInlineKeyboard([]models.InlineButton{button(app.BtnMainMenu, cbMainMenu, userID)})
}

// menuKeyboard renders the main menu. Users without a stored credential get
// a login row on top.
func menuKeyboard(userID int64, authenticated bool) *models.InlineKeyboard {
	rows := [][]models.InlineButton{
		{button(app.BtnDeployNautika, cbDeployNautika, userID)},
		{button(app.BtnListWorkers, cbListWorkers, userID)},
		{button(app.BtnDeleteWorker, cbDeleteWorker, userID)},
		{button(app.BtnDeployGithub, cbDeployGithub, userID)},
	}
	if !authenticated {
		rows = append([][]models.InlineButton{{button(app.BtnLogin, cbLogin, userID)}}, rows...)
	}
	return models.NewInlineKeyboard(rows...)
}

// deleteKeyboard puts one button per worker. Workers whose confirmation
// callback data would exceed the Bot API limit get no button and are returned
// in skipped.
func deleteKeyboard(userID int64, listings []models.WorkerListing) (kb *models.InlineKeyboard, kept []models.WorkerListing, skipped []string) {
	rows := make([][]models.InlineButton, 0, len(listings)+1)
	for _, l := range listings {
		data := targetCallbackData(cbConfirmDelete, userID, l.Script.ID)
		if len(targetCallbackData(cbDeleteConfirmed, userID, l.Script.ID)) > maxCallbackDataLen {
			skipped = append(skipped, l.Script.ID)
			continue
		}
		kept = append(kept, l)
		rows = append(rows, []models.InlineButton{{Text: "🗑️ " + l.Script.ID, CallbackData: data}})
	}
	rows = append(rows, []models.InlineButton{button(app.BtnMainMenu, cbMainMenu, userID)})
	return models.NewInlineKeyboard(rows...), kept, skipped
}

func confirmDeleteKeyboard(userID int64, name string) *models.InlineKeyboard {
	confirm := models.InlineButton{Text: app.BtnConfirmDelete, CallbackData: targetCallbackData(cbDeleteConfirmed, userID, name)}
	return models.NewInlineKeyboard([]models.InlineButton{
		confirm,
		button(app.BtnCancelDelete, cbCancelDelete, userID),
	})
}
