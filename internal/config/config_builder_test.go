package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs, oldCommandLine := os.Args, flag.CommandLine
	flag.CommandLine = flag.NewFlagSet("bot", flag.ContinueOnError)
	os.Args = append([]string{"bot"}, args...)
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTelegramConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Telegram: Telegram{BotToken: "from-env"}},
		&StructuredConfig{Telegram: Telegram{BotToken: "from-file"}, App: App{Version: "1.0.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Telegram.BotToken)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "https://api.cloudflare.com/client/v4", cfg.Cloudflare.APIURL)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsEveryDefaultedField(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Telegram: Telegram{BotToken: "tok"}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Telegram.PollTimeout)
	assert.Equal(t, 30*time.Second, cfg.Cloudflare.RequestTimeout)
	assert.Equal(t, "https://raw.githubusercontent.com", cfg.GitHub.RawURL)
	assert.Equal(t, -1, cfg.Bot.MaxWorkersPerUser)
	assert.Equal(t, "./data/users.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.EventTimeout)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-token", b.configs[0].Telegram.BotToken)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("SERVER_EVENT_TIMEOUT", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withLegacyEnv ─────────────────────────────────────────────────────────────

func TestWithLegacyEnv_MapsUnprefixedVariables(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_FILENAME", "/tmp/bot.db")
	t.Setenv("MAX_WORKERS_PER_USER", "3")

	b := newConfigBuilder()
	b.withLegacyEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "0.0.0.0:8081", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "/tmp/bot.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 3, b.configs[0].Bot.MaxWorkersPerUser)
}

func TestWithLegacyEnv_NoAddressWhenUnset(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	b := newConfigBuilder()
	b.withLegacyEnv()

	require.Len(t, b.configs, 1)
	assert.Empty(t, b.configs[0].Server.HTTPAddress)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	resetFlags(t, "-t", "flag-token")

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Telegram.BotToken)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	resetFlags(t, "-nope")

	b := newConfigBuilder()
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfigWhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Telegram.BotToken = "file-token"
	payload.App.Version = "file-version"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file-token", b.configs[1].Telegram.BotToken)
	assert.Equal(t, "file-version", b.configs[1].App.Version)
}

func TestWithFile_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: "/first/ignored.json"},
		&StructuredConfig{FilePath: path},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvBeatsFlagsBeatsFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Telegram.BotToken = "file-token"
	payload.Storage.DB.DSN = "file.db"
	payload.App.Version = "file-version"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	resetFlags(t, "-c", path, "-d", "flag.db")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "file-version", cfg.App.Version)
}
