package routines

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/storage"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrValidation  = document.ErrValidation
	ErrPersistence = document.ErrPersistence
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Store owns the persisted routines document. Every operation reads the whole
// document from the backend, and every mutation writes it back whole.
type Store struct {
	backend storage.Backend
	key     string
	now     func() time.Time
	newID   func() string

	// serializes read-modify-write cycles within this process only
	mu sync.Mutex
}

type Option func(s *Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func NewStore(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     document.DefaultKey,
		now:     time.Now,
		newID:   newRoutineID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newRoutineID returns a time ordered UUID (v7).
func newRoutineID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Initialize writes an empty document, unless one is already stored.
func (s *Store) Initialize(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.initialize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.backend.Read(ctx, s.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: read document: %w", ErrPersistence, err)
	}

	log.Debugf("no document found under [%s], initializing", s.key)
	return s.persist(ctx, document.New())
}

// load returns the stored document. A missing or unparsable document yields
// the default one. Backend read failures are returned as is.
func (s *Store) load(ctx context.Context) (*document.Document, error) {
	data, err := s.backend.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return document.New(), nil
		}
		return nil, err
	}

	doc, err := document.Decode(data)
	if err != nil {
		log.Warnf("failed to parse document [%s], falling back to defaults: %s", s.key, err)
		return document.New(), nil
	}
	return doc, nil
}

// read is load for pure readers: it never fails.
func (s *Store) read(ctx context.Context) *document.Document {
	doc, err := s.load(ctx)
	if err != nil {
		log.Errorf("failed to read document [%s]: %s", s.key, err)
		return document.New()
	}
	return doc
}

func (s *Store) persist(ctx context.Context, doc *document.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w: encode document: %w", ErrPersistence, err)
	}
	if err := s.backend.Write(ctx, s.key, data); err != nil {
		log.Errorf("failed to save document [%s]: %s", s.key, err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// transact is the single read-modify-write primitive. The mutator reports
// whether it changed the document; only changed documents are written back.
func (s *Store) transact(ctx context.Context, mutator func(doc *document.Document) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		// never overwrite a document we could not read
		return fmt.Errorf("%w: read document: %w", ErrPersistence, err)
	}

	changed, err := mutator(doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	return s.persist(ctx, doc)
}

// Document returns the whole stored document.
func (s *Store) Document(ctx context.Context) *document.Document {
	return s.read(ctx)
}

// ProgressLog returns all progress entries, in stored order.
func (s *Store) ProgressLog(ctx context.Context) []document.ProgressEntry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.progress-log")
	defer span.End()

	progress := s.read(ctx).Progress
	span.SetAttributes(attribute.Int("entries", len(progress)))
	return progress
}
