package document

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrValidation is returned when a required argument is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrPersistence is returned when a changed document could not be stored.
	// Nothing was persisted in that case.
	ErrPersistence = errors.New("failed to save data")
)

// DefaultKey is the storage key the routines document lives under.
const DefaultKey = "PhysioRoutineDB"

// MaxActivityLevel caps the per-day activity level, no matter how many
// routines were completed that day.
const MaxActivityLevel = 3

type Routine struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []string   `json:"exercises"`
	CreatedAt time.Time  `json:"createdAt"`
	LastUsed  *time.Time `json:"lastUsed"`
}

// HasExercise reports whether the exercise id is already part of the routine.
func (r *Routine) HasExercise(exerciseID string) bool {
	for _, id := range r.Exercises {
		if id == exerciseID {
			return true
		}
	}
	return false
}

type CompletionRecord struct {
	RoutineID   string    `json:"routineId"`
	RoutineName string    `json:"routineName"`
	Duration    int       `json:"duration"` // minutes
	CompletedAt time.Time `json:"completedAt"`
}

// ProgressEntry aggregates all routine completions of one local calendar day.
type ProgressEntry struct {
	Date              time.Time          `json:"date"`
	ActivityLevel     int                `json:"activityLevel"`
	RoutinesCompleted []CompletionRecord `json:"routinesCompleted"`
}

// RecomputeActivityLevel sets the activity level from the number of completions.
func (p *ProgressEntry) RecomputeActivityLevel() {
	p.ActivityLevel = min(len(p.RoutinesCompleted), MaxActivityLevel)
}

// TotalDuration returns the sum of all completion durations of the day, in minutes.
func (p *ProgressEntry) TotalDuration() int {
	total := 0
	for _, rc := range p.RoutinesCompleted {
		total += rc.Duration
	}
	return total
}

type Document struct {
	Routines []Routine `json:"routines"`
	// Favorites is not used yet, but is kept and written back as is.
	Favorites []json.RawMessage `json:"favorites"`
	Progress  []ProgressEntry   `json:"progress"`
}

func New() *Document {
	return &Document{
		Routines:  []Routine{},
		Favorites: []json.RawMessage{},
		Progress:  []ProgressEntry{},
	}
}

// Decode parses a persisted document. Missing top level collections are
// replaced with empty ones, so callers never deal with nil slices.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	doc.normalize()
	return doc, nil
}

func (d *Document) Encode() ([]byte, error) {
	d.normalize()
	return json.Marshal(d)
}

// RoutineIndex returns the index of the routine with the given id, or -1.
func (d *Document) RoutineIndex(id string) int {
	for i := range d.Routines {
		if d.Routines[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) normalize() {
	if d.Routines == nil {
		d.Routines = []Routine{}
	}
	if d.Favorites == nil {
		d.Favorites = []json.RawMessage{}
	}
	if d.Progress == nil {
		d.Progress = []ProgressEntry{}
	}
	for i := range d.Routines {
		if d.Routines[i].Exercises == nil {
			d.Routines[i].Exercises = []string{}
		}
	}
	for i := range d.Progress {
		if d.Progress[i].RoutinesCompleted == nil {
			d.Progress[i].RoutinesCompleted = []CompletionRecord{}
		}
	}
}
