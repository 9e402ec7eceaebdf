package events

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

// instrumentationName scopes the publisher's tracer and meter.
const instrumentationName = "github.com/jsamuelsen11/go-domain-primitives/events"

// Attribute keys recorded on spans and metrics.
var (
	AttrEventType   = attribute.Key("event.type")
	AttrEntityID    = attribute.Key("entity.id")
	AttrAggregate   = attribute.Key("aggregate.name")
	AttrBatchSize   = attribute.Key("batch.size")
	AttrMessageType = attribute.Key("message.type")
)

// Compile-time interface check.
var _ Publisher = (*DomainEventPublisher)(nil)

// Option configures a DomainEventPublisher.
type Option func(*DomainEventPublisher)

// WithLogger sets the logger used to report rejected items. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *DomainEventPublisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracerProvider sets the provider for the per-batch span. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *DomainEventPublisher) {
		if tp != nil {
			p.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithMeterProvider sets the provider for the published and rejected counters.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *DomainEventPublisher) {
		if mp != nil {
			p.meter = mp.Meter(instrumentationName)
		}
	}
}

// DomainEventPublisher implements Publisher on top of a NotificationBus. It
// holds no per-call state and is safe for concurrent use as long as the bus
// is.
type DomainEventPublisher struct {
	bus      NotificationBus
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	counters counters
}

type counters struct {
	published metric.Int64Counter
	rejected  metric.Int64Counter
}

// NewPublisher creates a DomainEventPublisher that dispatches through bus.
// Without WithLogger, rejected items are logged to a discarding logger.
func NewPublisher(bus NotificationBus, opts ...Option) *DomainEventPublisher {
	if bus == nil {
		panic("events: NewPublisher requires a non-nil NotificationBus")
	}

	p := &DomainEventPublisher{
		bus:    bus,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		meter:  otel.GetMeterProvider().Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.counters = newCounters(p.meter, p.logger)

	return p
}

func newCounters(meter metric.Meter, logger *slog.Logger) counters {
	published, err := meter.Int64Counter(
		"domain_events.published",
		metric.WithDescription("Domain events handed to the notification bus"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		logger.Warn("creating domain_events.published counter", slog.Any("error", err))
		published = noop.Int64Counter{}
	}

	rejected, err := meter.Int64Counter(
		"domain_events.rejected",
		metric.WithDescription("Notification messages skipped because they carry no domain events"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		logger.Warn("creating domain_events.rejected counter", slog.Any("error", err))
		rejected = noop.Int64Counter{}
	}

	return counters{published: published, rejected: rejected}
}

// PublishDomainEvents publishes the buffered events of every entity in items.
//
// Items are processed in order. For an entity, a snapshot of its buffer is
// dispatched one event at a time, each Publish call returning before the next
// starts. Items that are not entities, including nil and nil entity
// pointers, produce one error-level log entry naming their type and are
// skipped.
//
// The context is checked before each dispatch; once it is done the batch
// stops with an error wrapping ctx.Err(). The first bus error also stops the
// batch. Events already dispatched are not rolled back.
func (p *DomainEventPublisher) PublishDomainEvents(ctx context.Context, items []domain.NotificationMessage) (err error) {
	ctx, span := p.tracer.Start(ctx, "events.PublishDomainEvents",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(AttrBatchSize.Int(len(items))),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	for i, item := range items {
		switch msg := item.(type) {
		case domain.EventSource:
			if isNilPointer(msg) {
				p.reject(ctx, i, item)
				continue
			}
			if err := p.publishEntity(ctx, msg); err != nil {
				return err
			}
		default:
			p.reject(ctx, i, item)
		}
	}

	return nil
}

func (p *DomainEventPublisher) publishEntity(ctx context.Context, src domain.EventSource) error {
	events := src.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	aggregate := domain.AggregateNameOf(src)
	trace.SpanFromContext(ctx).AddEvent("entity drained", trace.WithAttributes(
		AttrEntityID.Int(src.ID()),
		AttrAggregate.String(aggregate),
	))
	p.logger.DebugContext(ctx, "publishing domain events",
		slog.Int("entity_id", src.ID()),
		slog.String("aggregate", aggregate),
		slog.Int("count", len(events)),
	)

	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("publishing domain events for entity %d: %w", src.ID(), err)
		}

		eventType := typeName(ev)
		if err := p.bus.Publish(ctx, ev); err != nil {
			return fmt.Errorf("publishing %s for entity %d: %w", eventType, src.ID(), err)
		}

		p.counters.published.Add(ctx, 1, metric.WithAttributes(
			AttrEventType.String(eventType),
			AttrAggregate.String(aggregate),
		))
	}

	return nil
}

func (p *DomainEventPublisher) reject(ctx context.Context, index int, item domain.NotificationMessage) {
	msgType := typeName(item)

	p.logger.ErrorContext(ctx, "notification message does not have a domain event mechanism",
		slog.String("operation", "PublishDomainEvents"),
		slog.String("type", msgType),
		slog.Int("index", index),
	)

	trace.SpanFromContext(ctx).AddEvent("message rejected",
		trace.WithAttributes(AttrMessageType.String(msgType)),
	)
	p.counters.rejected.Add(ctx, 1, metric.WithAttributes(AttrMessageType.String(msgType)))
}

// isNilPointer reports whether v holds a nil pointer, such as a nil *Order
// stored in a NotificationMessage.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
