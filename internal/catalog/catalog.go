package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/storage"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

// DefaultKey is the storage key the exercise library lives under.
const DefaultKey = "physioExercises"

var (
	ErrValidation  = document.ErrValidation
	ErrPersistence = document.ErrPersistence
)

// Catalog is the exercise library. It is loaded once and then served from
// memory; only Add writes back to the backend.
type Catalog struct {
	backend storage.Backend
	key     string
	newID   func() string

	mu        sync.RWMutex
	exercises []Exercise
}

type Option func(c *Catalog)

func WithKey(key string) Option {
	return func(c *Catalog) {
		if key != "" {
			c.key = key
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Catalog) {
		c.newID = newID
	}
}

type seedFile struct {
	Exercises []Exercise `yaml:"exercises"`
}

// ReadExercisesFile parses a YAML file holding an "exercises" list. The
// exercises are normalized but not validated.
func ReadExercisesFile(path string) ([]Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exercises file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse exercises file: %w", err)
	}
	for i := range seed.Exercises {
		seed.Exercises[i].Normalize()
	}
	return seed.Exercises, nil
}

// LoadSeedFile reads a YAML exercise list, used instead of the built-in
// defaults when nothing is stored yet.
func LoadSeedFile(path string) ([]Exercise, error) {
	exercises, err := ReadExercisesFile(path)
	if err != nil {
		return nil, err
	}

	for i := range exercises {
		if exercises[i].ID == "" {
			return nil, fmt.Errorf("seed exercise %d [%s]: id missing", i, exercises[i].Name)
		}
		if err := exercises[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed exercise [%s]: %w", exercises[i].ID, err)
		}
	}
	return exercises, nil
}

// Load returns the stored catalog. If nothing is stored, or the stored list
// cannot be read or parsed, seed is used, or the built-in defaults when seed
// is empty. Load never fails.
func Load(ctx context.Context, backend storage.Backend, seed []Exercise, opts ...Option) *Catalog {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.load")
	defer span.End()

	c := &Catalog{
		backend: backend,
		key:     DefaultKey,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	fallback := func() []Exercise {
		if len(seed) > 0 {
			return slices.Clone(seed)
		}
		return Defaults()
	}

	data, err := backend.Read(ctx, c.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.exercises = fallback()
	case err != nil:
		log.Errorf("failed to read exercise catalog [%s], using defaults: %s", c.key, err)
		c.exercises = fallback()
	default:
		var stored []Exercise
		if err := json.Unmarshal(data, &stored); err != nil {
			log.Warnf("failed to parse exercise catalog [%s], using defaults: %s", c.key, err)
			c.exercises = fallback()
		} else {
			c.exercises = stored
		}
	}

	span.SetAttributes(attribute.Int("exercises", len(c.exercises)))
	log.Debugf("exercise catalog loaded: %d exercises", len(c.exercises))
	return c
}

func (c *Catalog) All() []Exercise {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.exercises)
}

func (c *Catalog) ByID(id string) (Exercise, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

func (c *Catalog) ByCategory(category string) []Exercise {
	c.mu.RLock()
	defer c.mu.RUnlock()
	filtered := []Exercise{}
	for _, e := range c.exercises {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Categories returns the distinct categories, in order of first appearance.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	categories := []string{}
	for _, e := range c.exercises {
		if !slices.Contains(categories, e.Category) {
			categories = append(categories, e.Category)
		}
	}
	return categories
}

// Resolve maps exercise ids to exercises, in the given order. Unknown ids are
// skipped.
func (c *Catalog) Resolve(ids []string) []Exercise {
	resolved := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.ByID(id); ok {
			resolved = append(resolved, e)
		}
	}
	return resolved
}

// Add validates the exercise, gives it a fresh id and persists the whole
// library. On a failed write the library stays as it was.
func (c *Catalog) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise.Normalize()
	if err := exercise.Validate(); err != nil {
		return nil, err
	}
	exercise.ID = c.newID()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := append(slices.Clone(c.exercises), exercise)
	data, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("%w: encode catalog: %w", ErrPersistence, err)
	}
	if err := c.backend.Write(ctx, c.key, data); err != nil {
		log.Errorf("failed to save exercise catalog [%s]: %s", c.key, err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.exercises = updated
	return &exercise, nil
}
