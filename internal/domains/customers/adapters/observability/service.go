package observability

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/commercekit/commerce-api/internal/domains/customers/domain"
	"github.com/commercekit/commerce-api/internal/domains/customers/ports"
)

const tracerName = "github.com/commercekit/commerce-api/internal/domains/customers/adapters/observability"

// Service decorates the customers application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// CreateCustomer registers a new customer with instrumentation.
func (s *Service) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateCustomer", attribute.String("customer.email", input.Email))
	defer span.End()

	s.logInfo(ctx, "creating customer", slog.String("customer.email", input.Email))
	result, err := s.inner.CreateCustomer(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create customer", slog.String("customer.email", input.Email))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "customer created", slog.String("customer.id", result.ID.String()))
	return result, nil
}

// GetByID loads a single customer.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("customer.id", id.String()))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load customer", slog.String("customer.id", id.String()))
	}
	return result, nil
}

// List exposes all customers.
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list customers")
	}
	span.SetAttributes(attribute.Int("customer.result.count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	customersCreated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	customersCreated, _ := m.Int64Counter("customers.service.created", metric.WithDescription("Number of customers created"))
	return serviceMetrics{customersCreated: customersCreated}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.customersCreated == nil {
		return
	}
	m.customersCreated.Add(ctx, 1)
}

var _ ports.Service = (*Service)(nil)
