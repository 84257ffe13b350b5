// Package server runs the bot process: the HTTP listener for probes and
// webhook deliveries, the background workers such as the update poller, and
// the graceful shutdown of both on SIGINT, SIGTERM or SIGQUIT.
package server
