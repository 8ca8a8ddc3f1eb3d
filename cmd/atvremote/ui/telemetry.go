package ui

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TelemetryOutput renders operation spans as step lines on stderr. The CLI
// hands its tracer to pkg/telemetry operations; every child span becomes a
// visible step.
type TelemetryOutput struct {
	provider *sdktrace.TracerProvider
}

func NewTelemetryOutput() *TelemetryOutput {
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&stepPrinter{}))
	return &TelemetryOutput{provider: provider}
}

// Tracer returns the tracer operations should start spans on.
func (o *TelemetryOutput) Tracer(name string) trace.Tracer {
	if o == nil || o.provider == nil {
		return otel.Tracer(name)
	}
	return o.provider.Tracer(name)
}

// Close flushes pending spans.
func (o *TelemetryOutput) Close() {
	if o == nil || o.provider == nil {
		return
	}
	_ = o.provider.Shutdown(context.Background())
}

// stepPrinter writes an indented line when a child span starts and an error
// line when a child span ends in error. Root spans print nothing.
type stepPrinter struct{}

func (p *stepPrinter) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.Parent().IsValid() {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n", MutedStyle.Render("→"), s.Name())
}

func (p *stepPrinter) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.Parent().IsValid() {
		return
	}
	if s.Status().Code == codes.Error {
		fmt.Fprintln(os.Stderr, "  "+ErrorMsg("%s: %s", s.Name(), s.Status().Description))
	}
}

func (p *stepPrinter) Shutdown(context.Context) error   { return nil }
func (p *stepPrinter) ForceFlush(context.Context) error { return nil }
