package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
		Version  string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Telegram struct {
		BotToken    string   `json:"bot_token" yaml:"bot_token"`
		APIURL      string   `json:"api_url" yaml:"api_url"`
		PollTimeout Duration `json:"poll_timeout" yaml:"poll_timeout"`
		WebhookURL  string   `json:"webhook_url" yaml:"webhook_url"`
	} `json:"telegram,omitempty" yaml:"telegram,omitempty"`

	Cloudflare struct {
		APIURL         string            `json:"api_url" yaml:"api_url"`
		AccountID      string            `json:"account_id" yaml:"account_id"`
		APIToken       string            `json:"api_token" yaml:"api_token"`
		RequestTimeout Duration          `json:"request_timeout" yaml:"request_timeout"`
		WorkerVars     map[string]string `json:"worker_vars" yaml:"worker_vars"`
		KVNamespaces   map[string]string `json:"kv_namespaces" yaml:"kv_namespaces"`
	} `json:"cloudflare,omitempty" yaml:"cloudflare,omitempty"`

	GitHub struct {
		RawURL string `json:"raw_url" yaml:"raw_url"`
		APIURL string `json:"api_url" yaml:"api_url"`
		Token  string `json:"token" yaml:"token"`
	} `json:"github,omitempty" yaml:"github,omitempty"`

	Bot struct {
		OwnerID           int64   `json:"owner_id" yaml:"owner_id"`
		AdminIDs          []int64 `json:"admin_ids" yaml:"admin_ids"`
		MaxWorkersPerUser int     `json:"max_workers_per_user" yaml:"max_workers_per_user"`
	} `json:"bot,omitempty" yaml:"bot,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Sessions struct {
			BoltPath string `json:"bolt_path" yaml:"bolt_path"`
		} `json:"sessions,omitempty" yaml:"sessions,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		EventTimeout    Duration `json:"event_timeout" yaml:"event_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(filePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.App.LogLevel,
			Version:  f.App.Version,
		},
		Telegram: Telegram{
			BotToken:    f.Telegram.BotToken,
			APIURL:      f.Telegram.APIURL,
			PollTimeout: time.Duration(f.Telegram.PollTimeout),
			WebhookURL:  f.Telegram.WebhookURL,
		},
		Cloudflare: Cloudflare{
			APIURL:         f.Cloudflare.APIURL,
			AccountID:      f.Cloudflare.AccountID,
			APIToken:       f.Cloudflare.APIToken,
			RequestTimeout: time.Duration(f.Cloudflare.RequestTimeout),
			WorkerVars:     f.Cloudflare.WorkerVars,
			KVNamespaces:   f.Cloudflare.KVNamespaces,
		},
		GitHub: GitHub{
			RawURL: f.GitHub.RawURL,
			APIURL: f.GitHub.APIURL,
			Token:  f.GitHub.Token,
		},
		Bot: Bot{
			OwnerID:           f.Bot.OwnerID,
			AdminIDs:          f.Bot.AdminIDs,
			MaxWorkersPerUser: f.Bot.MaxWorkersPerUser,
		},
		Storage: Storage{
			DB:       DB{DSN: f.Storage.DB.DSN},
			Sessions: Sessions{BoltPath: f.Storage.Sessions.BoltPath},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			EventTimeout:    time.Duration(f.Server.EventTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Bare numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
