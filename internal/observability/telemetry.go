package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/maleghast-vtt/internal/logging"
)

// InstrumentationName имя трейсера компонентов поля
const InstrumentationName = "github.com/annel0/maleghast-vtt"

// Tracer возвращает трейсер из глобального TracerProvider.
// Пока InitTelemetry не вызван, спаны ничего не делают.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// InitTelemetry настраивает OTLP экспортер и устанавливает глобальный TracerProvider.
// Возвращает функцию shutdown, которую нужно вызвать при завершении приложения.
func InitTelemetry(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	// OTLP HTTP экспортер (по умолчанию localhost:4318)
	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	return install(ctx, serviceName, sdktrace.WithBatcher(exp))
}

// InitWithExporter устанавливает TracerProvider с синхронным экспортом в exp
func InitWithExporter(ctx context.Context, serviceName string, exp sdktrace.SpanExporter) (func(context.Context) error, error) {
	return install(ctx, serviceName, sdktrace.WithSyncer(exp))
}

func install(ctx context.Context, serviceName string, opt sdktrace.TracerProviderOption) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	logging.Info("📡 OpenTelemetry инициализирован (service=%s)", serviceName)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}
