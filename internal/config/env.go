// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the unprefixed variables understood by earlier
// deployments of the bot.
type legacyEnv struct {
	Host              string `env:"HOST"`
	Port              int    `env:"PORT"`
	DBFilename        string `env:"DB_FILENAME"`
	MaxWorkersPerUser int    `env:"MAX_WORKERS_PER_USER"`
}

// parseLegacyEnv maps the legacy variables onto a [StructuredConfig]. HOST
// and PORT form the HTTP address together; a missing half falls back to
// the default host or port.
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: legacy.DBFilename}},
		Bot:     Bot{MaxWorkersPerUser: legacy.MaxWorkersPerUser},
	}

	if legacy.Host != "" || legacy.Port != 0 {
		host, port := legacy.Host, legacy.Port
		if host == "" {
			host = defaultHost
		}
		if port == 0 {
			port = defaultPort
		}
		cfg.Server.HTTPAddress = net.JoinHostPort(host, strconv.Itoa(port))
	}

	return cfg, nil
}
