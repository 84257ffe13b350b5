package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command line into a [StructuredConfig].
//
// Flags:
//
//	-a health/webhook server address in format [host]:[port]
//	-t telegram bot token
//	-d database DSN (SQLite file path or postgres:// URL)
//	-b bbolt sessions file path
//	-c/-config JSON or YAML config file path
//	-log-level zerolog level name
//	-webhook-url public base URL for webhook delivery
//	-poll-timeout long-polling timeout (e.g. "30s")
//	-event-timeout per-update processing timeout (e.g. "1m")
//	-request-timeout remote API request timeout (e.g. "30s")
//	-max-workers maximum bot-deployed workers per user
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var botToken string
	var databaseDSN string
	var boltPath string
	var configPath string
	var logLevel string
	var webhookURL string
	var pollTimeout time.Duration
	var eventTimeout time.Duration
	var requestTimeout time.Duration
	var maxWorkers int

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&botToken, "t", "", "Telegram bot token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&boltPath, "b", "", "bbolt sessions file path")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&webhookURL, "webhook-url", "", "Public base URL for webhook delivery")
	fs.DurationVar(&pollTimeout, "poll-timeout", 0, "Long-polling timeout (e.g., 30s)")
	fs.DurationVar(&eventTimeout, "event-timeout", 0, "Per-update timeout (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote API request timeout (e.g., 30s)")
	fs.IntVar(&maxWorkers, "max-workers", 0, "Maximum bot-deployed workers per user")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Telegram: Telegram{
			BotToken:    botToken,
			PollTimeout: pollTimeout,
			WebhookURL:  webhookURL,
		},
		Cloudflare: Cloudflare{
			RequestTimeout: requestTimeout,
		},
		Bot: Bot{
			MaxWorkersPerUser: maxWorkers,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Sessions: Sessions{BoltPath: boltPath},
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			EventTimeout: eventTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
