package jukeaudio

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/tj-smith47/jukeaudio-go"

// WithTracerProvider sets the OpenTelemetry provider used to trace API
// calls. Without it the global provider is used, which is a no-op until the
// application installs one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

func defaultTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerName)
}

func (c *Client) startSpan(ctx context.Context, cl call) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "jukeaudio."+cl.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.method),
			attribute.String("http.route", cl.route),
			attribute.String("server.address", c.host),
		),
	)
}

// endSpan records the outcome of a call. The span is ended by the caller.
func endSpan(span trace.Span, status int, err error) {
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
