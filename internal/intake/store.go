package intake

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerName is the instrumentation scope used for dispatch spans.
const TracerName = "docintake/intake"

// Store holds the current State and applies Actions to it.
//
// Store is not safe for concurrent use. It is driven only from the Bubble
// Tea update loop, which handles one message at a time.
type Store struct {
	state  State
	logger *zap.Logger
	tracer oteltrace.Tracer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for transitions and rejections.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used for dispatch spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Store) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewStore creates a store holding an empty State.
// Defaults: no-op logger, global OpenTelemetry tracer.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:  NewState(),
		logger: zap.NewNop(),
		tracer: otel.Tracer(TracerName),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies a to the current state. The resulting state is
// committed even when a returns an error, since rejections such as a blank
// submit still have side effects (the modal closes).
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	_, span := s.tracer.Start(ctx, "intake."+a.Name())
	defer span.End()

	if up, ok := a.(UploadDocuments); ok {
		span.SetAttributes(
			attribute.Int("intake.upload.count", len(up.Files)),
			attribute.String("intake.upload.source", up.Source),
		)
	}

	next, err := a.Apply(s.state)
	s.state = next

	span.SetAttributes(
		attribute.Int("intake.applicants", next.Len()),
		attribute.Int("intake.selected", next.Selected),
		attribute.Int("intake.documents", len(next.CurrentDocuments())),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Info("action rejected",
			zap.String("action", a.Name()),
			zap.Error(err),
			zap.Bool("blank_name", errors.Is(err, ErrBlankName)),
		)
		return err
	}

	s.logger.Debug("action applied",
		zap.String("action", a.Name()),
		zap.Int("applicants", next.Len()),
		zap.Int("selected", next.Selected),
	)
	return nil
}
