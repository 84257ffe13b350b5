package config

import (
	"net"
	"strconv"
	"time"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 3000
)

// defaults returns the values used for every field no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Telegram: Telegram{
			APIURL:      "https://api.telegram.org",
			PollTimeout: 30 * time.Second,
		},
		Cloudflare: Cloudflare{
			APIURL:         "https://api.cloudflare.com/client/v4",
			RequestTimeout: 30 * time.Second,
		},
		GitHub: GitHub{
			RawURL: "https://raw.githubusercontent.com",
			APIURL: "https://api.github.com/",
		},
		Bot: Bot{
			MaxWorkersPerUser: -1,
		},
		Storage: Storage{
			DB: DB{DSN: "./data/users.db"},
		},
		Server: Server{
			HTTPAddress:     net.JoinHostPort(defaultHost, strconv.Itoa(defaultPort)),
			EventTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
