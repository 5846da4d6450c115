package resourcecache

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nordkost/go-erp-client/apiclient"
)

// Notifier receives the transient user-facing notifications emitted after
// mutations. Implementations must not block; the decorator calls them inline.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(context.Context, string) {}
func (NopNotifier) Failure(context.Context, string) {}

// NewLogNotifier returns a Notifier that writes notifications to logger,
// successes at info and failures at warn.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{log: logger}
}

type logNotifier struct {
	log *slog.Logger
}

func (n *logNotifier) Success(ctx context.Context, message string) {
	n.log.InfoContext(ctx, message, "notification", "success")
}

func (n *logNotifier) Failure(ctx context.Context, message string) {
	n.log.WarnContext(ctx, message, "notification", "failure")
}

// Action pairs the past-tense verb used in success notifications with the
// infinitive used in failure fallbacks.
type Action struct {
	done string
	verb string
}

var (
	ActionCreate = Action{done: "opprettet", verb: "opprette"}
	ActionUpdate = Action{done: "oppdatert", verb: "oppdatere"}
	ActionDelete = Action{done: "slettet", verb: "slette"}
)

// successMessage renders "<label> <verb>", e.g. "Ansatt opprettet".
func successMessage(label string, act Action) string {
	return label + " " + act.done
}

// FailureMessage derives the user-facing text for a failed operation: the
// backend's detail message when it sent one, otherwise a generic fallback
// like "Kunne ikke opprette ansatt".
func FailureMessage(err error, act Action, singular string) string {
	if msg := backendDetail(err); msg != "" {
		return msg
	}
	return "Kunne ikke " + act.verb + " " + strings.ToLower(singular)
}

// backendDetail extracts the backend-provided message from a classified
// error. Transport-level texts (network, malformed) read like debugging
// output, so only messages that came with an HTTP status pass through.
func backendDetail(err error) string {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	if apiErr.StatusCode == 0 {
		return ""
	}
	return apiErr.Message
}
