// Package webhook forwards order events to an external HTTP receiver. The
// forwarder subscribes to the mediator like any other handler, so a rejected
// delivery fails the publish and the order change is not stored unless the
// forwarder runs in best-effort mode.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/mediator"
)

// Headers set on every delivery besides Content-Type.
const (
	HeaderEventID   = "X-Event-ID"
	HeaderEventType = "X-Event-Type"
)

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithBestEffort makes delivery failures log at WARN instead of failing the
// publish.
func WithBestEffort(on bool) Option {
	return func(f *Forwarder) { f.bestEffort = on }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Forwarder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Forwarder POSTs order events as JSON to a single URL.
type Forwarder struct {
	client     *httpclient.Client
	url        string
	bestEffort bool
	logger     *slog.Logger
}

// NewForwarder creates a Forwarder delivering to url through client.
func NewForwarder(client *httpclient.Client, url string, opts ...Option) *Forwarder {
	f := &Forwarder{
		client: client,
		url:    url,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Subscribe registers the forwarder for every order event on m.
func (f *Forwarder) Subscribe(m *mediator.Mediator) {
	mediator.Subscribe(m, f.Forward)
}

// Forward delivers ev. Any 2xx response counts as accepted.
func (f *Forwarder) Forward(ctx context.Context, ev orders.Event) error {
	payload := ToEventDTO(ev)

	err := f.deliver(ctx, payload)
	if err == nil {
		f.logger.DebugContext(ctx, "webhook delivered",
			slog.String("event_id", payload.EventID),
			slog.String("event_type", payload.Type),
			logging.OrderID(payload.OrderID),
		)
		return nil
	}

	attrs := []any{
		slog.String("event_id", payload.EventID),
		slog.String("event_type", payload.Type),
		logging.OrderID(payload.OrderID),
		logging.Err(err),
	}
	if f.bestEffort {
		f.logger.WarnContext(ctx, "webhook delivery dropped", attrs...)
		return nil
	}
	f.logger.ErrorContext(ctx, "webhook delivery failed", attrs...)
	return err
}

func (f *Forwarder) deliver(ctx context.Context, payload EventDTO) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", payload.Type, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventID, payload.EventID)
	req.Header.Set(HeaderEventType, payload.Type)

	resp, err := f.client.Do(ctx, req)
	if resp != nil {
		defer f.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices):
		// Exhausted retries return the last response as well as an error.
		return translateStatus(resp)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	default:
		return nil
	}
}

func (f *Forwarder) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		f.logger.WarnContext(ctx, "failed to close webhook response body",
			logging.Err(err),
		)
	}
}
