package service

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-workers-bot/models"
	"github.com/stretchr/testify/assert"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		rest string
		name string
		ok   bool
	}{
		{rest: "42_api", name: "api", ok: true},
		{rest: "42_my_legacy_worker", name: "my_legacy_worker", ok: true},
		{rest: "42_", ok: false},
		{rest: "42", ok: false},
		{rest: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			name, ok := parseTarget(tt.rest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestMenuKeyboard(t *testing.T) {
	authenticated := callbackDataOf(menuKeyboard(7, true))
	assert.Equal(t, []string{"deploy_nautika_7", "list_workers_7", "delete_worker_7", "deploy_github_7"}, authenticated)

	anonymous := callbackDataOf(menuKeyboard(7, false))
	assert.Equal(t, append([]string{"login_7"}, authenticated...), anonymous)
}

func TestDeleteKeyboard_SkipsOversizedCallbackData(t *testing.T) {
	// "delete_confirmed_7_" is 19 bytes, leaving 45 for the name
	fits := strings.Repeat("a", 45)
	tooLong := strings.Repeat("b", 46)

	kb, kept, skipped := deleteKeyboard(7, []models.WorkerListing{
		{Script: models.Script{ID: fits}},
		{Script: models.Script{ID: tooLong}},
	})

	assert.Equal(t, []string{"confirm_delete_7_" + fits, "main_menu_7"}, callbackDataOf(kb))
	assert.Len(t, kept, 1)
	assert.Equal(t, []string{tooLong}, skipped)
	for _, data := range callbackDataOf(kb) {
		assert.LessOrEqual(t, len(data), maxCallbackDataLen)
	}
}
