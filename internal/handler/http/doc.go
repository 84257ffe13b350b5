// Package http serves the bot's HTTP surface: liveness and status probes and,
// in webhook mode, the Telegram delivery endpoint.
//
// Every request passes through panic recovery, trace id assignment, access
// logging and response compression before reaching a route. Unknown routes
// and known routes requested with an unregistered method answer with a JSON
// 404 body.
package http
