package dogs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "dog-registry"

type telemetry struct {
	tracer   trace.Tracer
	created  metric.Int64Counter
	deleted  metric.Int64Counter
	failures metric.Int64Counter
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) telemetry {
	meter := mp.Meter(instrumentationName)

	created, err := meter.Int64Counter("dogs.created",
		metric.WithDescription("Number of dogs persisted, seeds included"),
	)
	if err != nil {
		created = noop.Int64Counter{}
	}
	deleted, err := meter.Int64Counter("dogs.deleted",
		metric.WithDescription("Number of delete calls, unknown ids included"),
	)
	if err != nil {
		deleted = noop.Int64Counter{}
	}
	failures, err := meter.Int64Counter("dogs.storage_failures",
		metric.WithDescription("Number of registry operations that failed in the store"),
	)
	if err != nil {
		failures = noop.Int64Counter{}
	}

	return telemetry{
		tracer:   tp.Tracer(instrumentationName),
		created:  created,
		deleted:  deleted,
		failures: failures,
	}
}

func (t telemetry) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "dogs."+op,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// end cierra el span y cuenta la falla si la hubo.
func (t telemetry) end(ctx context.Context, span trace.Span, op string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
