// Package telegram turns raw Bot API updates into the chat events consumed by
// service.ConversationService.
//
// Updates arrive from two sources: the long-polling worker and the webhook
// route of the HTTP handler. Both call Handler.HandleUpdate, which returns
// immediately. Updates of one user are queued and drained in arrival order by
// a single goroutine; updates of different users run concurrently. Each update gets
// a trace id, a scoped logger in its context and the configured event
// timeout. A panic while processing an update is recovered and answered with
// the generic error message.
package telegram
